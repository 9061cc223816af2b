package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-phasor/cplx"
	"github.com/cwbudde/algo-phasor/scalar"
)

// ErrDifferentFrequency is returned when two sinusoids with unequal
// frequencies are added.
var ErrDifferentFrequency = errors.New("different frequency")

// Sinusoid describes the real signal A·cos(2πf·t + θ) with amplitude A,
// frequency f and phase θ in scalar type T. It is an immutable value type:
// operations return new values.
type Sinusoid[T scalar.Float] struct {
	Amplitude T
	Frequency T
	Phase     T
}

// New returns the sinusoid amplitude·cos(2π·frequency·t + phase).
func New[T scalar.Float](amplitude, frequency, phase T) Sinusoid[T] {
	return Sinusoid[T]{Amplitude: amplitude, Frequency: frequency, Phase: phase}
}

// Period returns 1/frequency. A zero frequency propagates the scalar's
// division-by-zero result.
func (s Sinusoid[T]) Period() T {
	return scalar.Recip(s.Frequency)
}

// RadialFrequency returns 2π·frequency in radians per unit time.
func (s Sinusoid[T]) RadialFrequency() T {
	return scalar.TwoPi[T]() * s.Frequency
}

// Sample evaluates the sinusoid at time t. The time is wrapped modulo the
// period before the cosine so the trig argument stays bounded under cyclic
// re-sampling; cosine periodicity makes the wrap value-neutral.
func (s Sinusoid[T]) Sample(t T) T {
	return s.Amplitude * scalar.Cos(s.RadialFrequency()*scalar.Mod(t, s.Period())+s.Phase)
}

// SampleRange samples the sinusoid at t = start + i/sampleRate for
// i = 0, 1, 2, ..., inclusive of start and exclusive of end, stopping at
// the first t >= end. For well-formed inputs the result holds
// ceil((end-start)·sampleRate) samples.
//
// The caller must ensure sampleRate > 0 and end > start. When end <= start
// the result is empty; a negative sample rate walks away from end and
// never terminates; a zero rate divides by zero. None of these are
// guarded here.
func (s Sinusoid[T]) SampleRange(start, end, sampleRate T) []T {
	var out []T
	for i := 0; ; i++ {
		t := start + T(i)/sampleRate
		if t >= end {
			break
		}
		out = append(out, s.Sample(t))
	}
	return out
}

// Phasor returns the complex phasor amplitude·e^{i·phase}. The frequency
// is discarded; callers combining phasors must track it out of band.
func (s Sinusoid[T]) Phasor() cplx.Complex[T] {
	return cplx.FromPolar(s.Amplitude, s.Phase)
}

// Add sums two sinusoids of equal frequency by phasor addition: both
// operands map to their phasors, the phasors add as vectors in the
// complex plane, and the sum converts back to amplitude and phase at the
// shared frequency.
//
// Frequencies are compared with exact scalar equality, matching the
// original contract. Two mathematically equal frequencies computed along
// different floating-point paths can differ in the last bit and be
// rejected here; callers deriving frequencies arithmetically should
// normalize them first.
func (s Sinusoid[T]) Add(other Sinusoid[T]) (Sinusoid[T], error) {
	if s.Frequency != other.Frequency {
		return Sinusoid[T]{}, fmt.Errorf("%w: %v vs %v", ErrDifferentFrequency, s.Frequency, other.Frequency)
	}
	amplitude, phase := cplx.Polar(s.Phasor().Add(other.Phasor()))
	return Sinusoid[T]{Amplitude: amplitude, Frequency: s.Frequency, Phase: phase}, nil
}
