package algebra

import (
	"fmt"
	"math"

	"github.com/born-ml/kmath/internal/nd"
)

// Float64Field is the field of float64 values.
type Float64Field struct{}

// Float32Field is the field of float32 values. Transcendental functions are
// evaluated in float64 and rounded.
type Float32Field struct{}

// Compile-time checks.
var (
	_ ExtendedField[float64]  = Float64Field{}
	_ IdentityTester[float64] = Float64Field{}
	_ ExtendedField[float32]  = Float32Field{}
	_ IdentityTester[float32] = Float32Field{}
)

func (Float64Field) Zero() float64                      { return 0 }
func (Float64Field) One() float64                       { return 1 }
func (Float64Field) Add(a, b float64) float64           { return a + b }
func (Float64Field) Sub(a, b float64) float64           { return a - b }
func (Float64Field) Neg(a float64) float64              { return -a }
func (Float64Field) Mul(a, b float64) float64           { return a * b }
func (Float64Field) Div(a, b float64) float64           { return a / b }
func (Float64Field) Scale(a float64, k float64) float64 { return a * k }

func (Float64Field) IsZero(a float64) bool     { return a == 0 && !math.Signbit(a) }
func (Float64Field) IsOne(a float64) bool      { return a == 1 }
func (Float64Field) IsMinusOne(a float64) bool { return a == -1 }

func (Float64Field) Exp(a float64) float64   { return math.Exp(a) }
func (Float64Field) Ln(a float64) float64    { return math.Log(a) }
func (Float64Field) Sqrt(a float64) float64  { return math.Sqrt(a) }
func (Float64Field) Sin(a float64) float64   { return math.Sin(a) }
func (Float64Field) Cos(a float64) float64   { return math.Cos(a) }
func (Float64Field) Tan(a float64) float64   { return math.Tan(a) }
func (Float64Field) Asin(a float64) float64  { return math.Asin(a) }
func (Float64Field) Acos(a float64) float64  { return math.Acos(a) }
func (Float64Field) Atan(a float64) float64  { return math.Atan(a) }
func (Float64Field) Sinh(a float64) float64  { return math.Sinh(a) }
func (Float64Field) Cosh(a float64) float64  { return math.Cosh(a) }
func (Float64Field) Tanh(a float64) float64  { return math.Tanh(a) }
func (Float64Field) Asinh(a float64) float64 { return math.Asinh(a) }
func (Float64Field) Acosh(a float64) float64 { return math.Acosh(a) }
func (Float64Field) Atanh(a float64) float64 { return math.Atanh(a) }

// Pow raises a to p. Integer-valued exponents accept negative bases.
func (Float64Field) Pow(a float64, p float64) (float64, error) {
	return PowFloat64(a, p)
}

// PowFloat64 is the float64 real power shared by the scalar field and the ND fast path.
func PowFloat64(a, p float64) (float64, error) {
	if a < 0 && !IsInteger(p) {
		return 0, fmt.Errorf("%w: negative argument %v could not be raised to the fractional power %v",
			nd.ErrInvalidArgument, a, p)
	}
	return math.Pow(a, p), nil
}

// IsInteger reports whether p has no fractional part.
func IsInteger(p float64) bool {
	return !math.IsInf(p, 0) && p == math.Trunc(p)
}

func (Float32Field) Zero() float32                      { return 0 }
func (Float32Field) One() float32                       { return 1 }
func (Float32Field) Add(a, b float32) float32           { return a + b }
func (Float32Field) Sub(a, b float32) float32           { return a - b }
func (Float32Field) Neg(a float32) float32              { return -a }
func (Float32Field) Mul(a, b float32) float32           { return a * b }
func (Float32Field) Div(a, b float32) float32           { return a / b }
func (Float32Field) Scale(a float32, k float64) float32 { return float32(float64(a) * k) }

func (Float32Field) IsZero(a float32) bool     { return a == 0 && !math.Signbit(float64(a)) }
func (Float32Field) IsOne(a float32) bool      { return a == 1 }
func (Float32Field) IsMinusOne(a float32) bool { return a == -1 }

func (Float32Field) Exp(a float32) float32   { return float32(math.Exp(float64(a))) }
func (Float32Field) Ln(a float32) float32    { return float32(math.Log(float64(a))) }
func (Float32Field) Sqrt(a float32) float32  { return float32(math.Sqrt(float64(a))) }
func (Float32Field) Sin(a float32) float32   { return float32(math.Sin(float64(a))) }
func (Float32Field) Cos(a float32) float32   { return float32(math.Cos(float64(a))) }
func (Float32Field) Tan(a float32) float32   { return float32(math.Tan(float64(a))) }
func (Float32Field) Asin(a float32) float32  { return float32(math.Asin(float64(a))) }
func (Float32Field) Acos(a float32) float32  { return float32(math.Acos(float64(a))) }
func (Float32Field) Atan(a float32) float32  { return float32(math.Atan(float64(a))) }
func (Float32Field) Sinh(a float32) float32  { return float32(math.Sinh(float64(a))) }
func (Float32Field) Cosh(a float32) float32  { return float32(math.Cosh(float64(a))) }
func (Float32Field) Tanh(a float32) float32  { return float32(math.Tanh(float64(a))) }
func (Float32Field) Asinh(a float32) float32 { return float32(math.Asinh(float64(a))) }
func (Float32Field) Acosh(a float32) float32 { return float32(math.Acosh(float64(a))) }
func (Float32Field) Atanh(a float32) float32 { return float32(math.Atanh(float64(a))) }

// Pow raises a to p. Integer-valued exponents accept negative bases.
func (Float32Field) Pow(a float32, p float64) (float32, error) {
	r, err := PowFloat64(float64(a), p)
	return float32(r), err
}
