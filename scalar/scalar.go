// Package scalar defines the numeric capability constraints used by the
// generic value types in this module, together with forwarding functions
// for the scalar operations Go does not expose as operators.
//
// Each constraint names the minimal operation set a scalar type must
// support to unlock a group of operations on the value types built on top
// of it. The constraints are deliberately independent rather than one
// monolithic numeric interface, so integer scalars are never forced to
// claim trigonometric capabilities they cannot provide.
package scalar

import "math"

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Arithmetic permits any scalar supporting addition, subtraction,
// multiplication, division and remainder. This is the minimal bundle for
// componentwise complex arithmetic.
type Arithmetic interface {
	Integer | Float
}

// SignedArithmetic permits any Arithmetic scalar whose negation is
// meaningful. Unsigned scalars are excluded: their unary minus wraps
// around instead of negating.
type SignedArithmetic interface {
	Signed | Float
}

// Trig permits scalars with native trigonometric primitives.
type Trig interface {
	Float
}

// Pow permits scalars with a native square root.
type Pow interface {
	Float
}

// Fraction permits scalars with a reciprocal and π constants.
type Fraction interface {
	Float
}

// Sin returns the sine of x.
func Sin[T Trig](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x.
func Cos[T Trig](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x.
func Tan[T Trig](x T) T { return T(math.Tan(float64(x))) }

// Asin returns the arcsine of x.
func Asin[T Trig](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x.
func Acos[T Trig](x T) T { return T(math.Acos(float64(x))) }

// Atan2 returns the two-argument arctangent of y/x in (-π, π], using the
// signs of both arguments to resolve the quadrant. Atan2(0, 0) is whatever
// the native arctangent returns for that input.
func Atan2[T Trig](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sqrt returns the square root of x.
func Sqrt[T Pow](x T) T { return T(math.Sqrt(float64(x))) }

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod[T Float](x, y T) T { return T(math.Mod(float64(x), float64(y))) }

// PowInt raises x to the integer power n by binary exponentiation. For
// negative n the result is 1/x^(-n) under T's division semantics, so
// integer scalars truncate toward zero and a zero base propagates the
// scalar's division-by-zero behavior.
func PowInt[T Arithmetic](x T, n int) T {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// Recip returns 1/x. A zero x propagates the scalar's division-by-zero
// result.
func Recip[T Fraction](x T) T { return 1 / x }

// Pi returns π in the scalar type T.
func Pi[T Fraction]() T { return T(math.Pi) }

// TwoPi returns 2π in the scalar type T.
func TwoPi[T Fraction]() T { return T(2 * math.Pi) }

// HalfPi returns π/2 in the scalar type T.
func HalfPi[T Fraction]() T { return T(math.Pi / 2) }
