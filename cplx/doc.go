// Package cplx provides a complex number value type generic over its
// scalar representation.
//
// Complex is parameterized on any scalar satisfying scalar.Arithmetic, so
// integer instantiations work alongside floating-point ones. Operations
// needing capabilities beyond the type's own constraint are package
// functions with tighter constraints: Go methods cannot narrow the
// receiver's type parameter, so the per-operation capability gating lives
// in function signatures instead.
//
//	c := cplx.New(3.0, 4.0)
//	r := cplx.Abs(c)          // needs scalar.Pow
//	a := cplx.Angle(c)        // needs scalar.Trig
//	d := cplx.Div(c, c)       // needs scalar.SignedArithmetic
//
// No operation validates its scalar inputs. Division by the zero complex
// value, NaN propagation and integer wraparound all follow the scalar
// type's native behavior.
package cplx
