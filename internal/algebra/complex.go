package algebra

import (
	"math"
	"math/cmplx"
)

// Complex128Field is the field of complex128 values.
type Complex128Field struct{}

// Compile-time checks.
var (
	_ ExtendedField[complex128]  = Complex128Field{}
	_ IdentityTester[complex128] = Complex128Field{}
)

func (Complex128Field) Zero() complex128 { return 0 }
func (Complex128Field) One() complex128  { return 1 }

func (Complex128Field) Add(a, b complex128) complex128 { return a + b }
func (Complex128Field) Sub(a, b complex128) complex128 { return a - b }
func (Complex128Field) Neg(a complex128) complex128    { return -a }
func (Complex128Field) Mul(a, b complex128) complex128 { return a * b }
func (Complex128Field) Div(a, b complex128) complex128 { return a / b }

func (Complex128Field) Scale(a complex128, k float64) complex128 {
	return complex(real(a)*k, imag(a)*k)
}

func (Complex128Field) IsZero(a complex128) bool     { return a == 0 && !math.Signbit(real(a)) && !math.Signbit(imag(a)) }
func (Complex128Field) IsOne(a complex128) bool      { return a == 1 }
func (Complex128Field) IsMinusOne(a complex128) bool { return a == -1 }

func (Complex128Field) Exp(a complex128) complex128   { return cmplx.Exp(a) }
func (Complex128Field) Ln(a complex128) complex128    { return cmplx.Log(a) }
func (Complex128Field) Sqrt(a complex128) complex128  { return cmplx.Sqrt(a) }
func (Complex128Field) Sin(a complex128) complex128   { return cmplx.Sin(a) }
func (Complex128Field) Cos(a complex128) complex128   { return cmplx.Cos(a) }
func (Complex128Field) Tan(a complex128) complex128   { return cmplx.Tan(a) }
func (Complex128Field) Asin(a complex128) complex128  { return cmplx.Asin(a) }
func (Complex128Field) Acos(a complex128) complex128  { return cmplx.Acos(a) }
func (Complex128Field) Atan(a complex128) complex128  { return cmplx.Atan(a) }
func (Complex128Field) Sinh(a complex128) complex128  { return cmplx.Sinh(a) }
func (Complex128Field) Cosh(a complex128) complex128  { return cmplx.Cosh(a) }
func (Complex128Field) Tanh(a complex128) complex128  { return cmplx.Tanh(a) }
func (Complex128Field) Asinh(a complex128) complex128 { return cmplx.Asinh(a) }
func (Complex128Field) Acosh(a complex128) complex128 { return cmplx.Acosh(a) }
func (Complex128Field) Atanh(a complex128) complex128 { return cmplx.Atanh(a) }

// Pow raises a to a real power on the principal branch. It never fails.
func (Complex128Field) Pow(a complex128, p float64) (complex128, error) {
	if IsInteger(p) && math.Abs(p) <= math.MaxInt32 {
		return PowerInt[complex128](Complex128Field{}, a, int64(p)), nil
	}
	return cmplx.Pow(a, complex(p, 0)), nil
}
