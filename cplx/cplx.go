package cplx

import "github.com/cwbudde/algo-phasor/scalar"

// Complex is a point in the complex plane, or a phasor, with components of
// scalar type T. It is an immutable value type: every operation returns a
// new value.
type Complex[T scalar.Arithmetic] struct {
	Real T
	Imag T
}

// New returns the complex number real + imag·i.
func New[T scalar.Arithmetic](real, imag T) Complex[T] {
	return Complex[T]{Real: real, Imag: imag}
}

// Add returns the componentwise sum c + other.
func (c Complex[T]) Add(other Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real + other.Real, Imag: c.Imag + other.Imag}
}

// Sub returns the componentwise difference c - other.
func (c Complex[T]) Sub(other Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real - other.Real, Imag: c.Imag - other.Imag}
}

// Mul returns the complex product (ac - bd) + (ad + bc)i for c = a+bi and
// other = c+di.
func (c Complex[T]) Mul(other Complex[T]) Complex[T] {
	return Complex[T]{
		Real: c.Real*other.Real - c.Imag*other.Imag,
		Imag: c.Real*other.Imag + c.Imag*other.Real,
	}
}

// Conj returns the complex conjugate.
func Conj[T scalar.SignedArithmetic](c Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real, Imag: -c.Imag}
}

// Neg returns the additive inverse.
func Neg[T scalar.SignedArithmetic](c Complex[T]) Complex[T] {
	return Complex[T]{Real: -c.Real, Imag: -c.Imag}
}

// Div returns c/d, computed as c·conj(d) over the real denominator |d|².
// There is no zero check: dividing by the zero complex value yields
// whatever T's division by zero produces.
func Div[T scalar.SignedArithmetic](c, d Complex[T]) Complex[T] {
	num := c.Mul(Conj(d))
	den := d.Real*d.Real + d.Imag*d.Imag
	return Complex[T]{Real: num.Real / den, Imag: num.Imag / den}
}

// Abs returns the magnitude sqrt(real² + imag²).
func Abs[T scalar.Pow](c Complex[T]) T {
	return scalar.Sqrt(c.Real*c.Real + c.Imag*c.Imag)
}

// Angle returns the angle atan2(imag, real) in (-π, π]. The angle of the
// zero value is whatever the scalar's arctangent returns for (0, 0).
func Angle[T scalar.Trig](c Complex[T]) T {
	return scalar.Atan2(c.Imag, c.Real)
}

// Polar returns the polar form (magnitude, angle).
func Polar[T scalar.Float](c Complex[T]) (T, T) {
	return Abs(c), Angle(c)
}

// FromPolar returns the complex number r·e^{iθ} = (r·cos θ, r·sin θ). It
// inverts Polar only up to the scalar's trigonometric rounding error.
func FromPolar[T scalar.Float](r, theta T) Complex[T] {
	return Complex[T]{Real: r * scalar.Cos(theta), Imag: r * scalar.Sin(theta)}
}
