package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BlockStats holds summary statistics of a rendered sample block.
type BlockStats struct {
	Length int
	DC     float64 // mean
	RMS    float64
	Peak   float64 // max(|max|, |min|)
}

// Stats computes block statistics in linear units. An empty block yields
// zero-valued stats.
func Stats(block []float64) BlockStats {
	n := len(block)
	if n == 0 {
		return BlockStats{}
	}

	energy := floats.Dot(block, block)
	peak := math.Max(math.Abs(floats.Max(block)), math.Abs(floats.Min(block)))

	return BlockStats{
		Length: n,
		DC:     floats.Sum(block) / float64(n),
		RMS:    math.Sqrt(energy / float64(n)),
		Peak:   peak,
	}
}
