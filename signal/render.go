package signal

import (
	"github.com/cwbudde/algo-vecmath"
)

// Renderer fills float64 sample blocks from sinusoid descriptions at a
// fixed sample rate.
type Renderer struct {
	sampleRate float64
	unit       []float64
	scaled     []float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSampleRate sets the rendering sample rate in samples per unit time.
func WithSampleRate(sampleRate float64) Option {
	return func(r *Renderer) {
		if sampleRate > 0 {
			r.sampleRate = sampleRate
		}
	}
}

// NewRenderer creates a configured renderer. The default sample rate is
// 48000.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{sampleRate: 48000}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// SampleRate returns the configured sample rate.
func (r *Renderer) SampleRate() float64 {
	return r.sampleRate
}

// Render returns n samples of s starting at time start.
func (r *Renderer) Render(s Sinusoid[float64], start float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	r.RenderInto(out, s, start)
	return out
}

// RenderInto fills dst with samples of s at t = start + i/sampleRate.
func (r *Renderer) RenderInto(dst []float64, s Sinusoid[float64], start float64) {
	for i := range dst {
		dst[i] = s.Sample(start + float64(i)/r.sampleRate)
	}
}

// Mix overwrites dst with the sample-wise sum of the given sinusoids
// starting at time start. Each sinusoid is rendered at unit amplitude,
// scaled by its own amplitude and accumulated into dst.
func (r *Renderer) Mix(dst []float64, start float64, sinusoids ...Sinusoid[float64]) {
	clear(dst)
	if len(dst) == 0 {
		return
	}
	r.unit = ensureLen(r.unit, len(dst))
	r.scaled = ensureLen(r.scaled, len(dst))
	for _, s := range sinusoids {
		r.RenderInto(r.unit, New(1, s.Frequency, s.Phase), start)
		vecmath.ScaleBlock(r.scaled, r.unit, s.Amplitude)
		vecmath.AddBlockInPlace(dst, r.scaled)
	}
}

// PhasorParts splits the phasors of the given sinusoids into planar real
// and imaginary slices, ready for block magnitude computation.
func PhasorParts(sinusoids []Sinusoid[float64]) (re, im []float64) {
	re = make([]float64, len(sinusoids))
	im = make([]float64, len(sinusoids))
	for i, s := range sinusoids {
		p := s.Phasor()
		re[i], im[i] = p.Real, p.Imag
	}
	return re, im
}

// Magnitudes computes sqrt(re²+im²) elementwise into dst. All three
// slices must have the same length.
func Magnitudes(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}
