// Package signal provides a real sinusoid value type generic over its
// scalar representation, phasor-based addition of equal-frequency
// sinusoids, and a float64 block renderer for turning sinusoid
// descriptions into sample buffers.
//
// A Sinusoid describes A·cos(2πf·t + θ). Two sinusoids of the same
// frequency add by phasor arithmetic: each maps to the complex phasor
// A·e^{iθ}, the phasors add as vectors in the complex plane, and the sum
// maps back to amplitude and phase at the shared frequency.
//
//	a := signal.New(-3.0, 1.0, 0.0)
//	b := signal.New(4.0, 1.0, -math.Pi/2)
//	sum, err := a.Add(b) // amplitude 5, phase ≈ -2.2143
//
// The numeric operations perform no input validation. A zero frequency
// propagates the scalar's division-by-zero result through Period and
// Sample, and SampleRange with a non-positive sample rate never advances
// or returns nothing, depending on sign. The caller owns these
// preconditions.
package signal
