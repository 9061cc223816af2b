package testutil

import "math"

// ReferenceCosine generates amplitude·cos(2πf·i/sampleRate + phase) for
// i = 0..length-1, computed directly against math.Cos as an independent
// reference for the generic sampling paths.
func ReferenceCosine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i)+phase)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
