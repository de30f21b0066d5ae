// Package algebra defines element algebras (groups, rings, fields) and their
// primitive implementations.
package algebra

// Group is an additive group over T.
type Group[T any] interface {
	Zero() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
}

// Ring adds multiplication with an identity.
type Ring[T any] interface {
	Group[T]
	One() T
	Mul(a, b T) T
}

// Field adds division and scaling by a real number.
type Field[T any] interface {
	Ring[T]
	Div(a, b T) T
	Scale(a T, k float64) T
}

// ExtendedField adds transcendental functions and real powers.
type ExtendedField[T any] interface {
	Field[T]

	Exp(a T) T
	Ln(a T) T
	Sqrt(a T) T

	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
	Asin(a T) T
	Acos(a T) T
	Atan(a T) T

	Sinh(a T) T
	Cosh(a T) T
	Tanh(a T) T
	Asinh(a T) T
	Acosh(a T) T
	Atanh(a T) T

	// Pow raises a to a real power.
	// Real-valued fields fail with nd.ErrInvalidArgument for a fractional power of a negative base.
	Pow(a T, p float64) (T, error)
}

// IdentityTester is implemented by rings whose identity elements have a unique
// representation. PowerUint only short-circuits on rings implementing it.
type IdentityTester[T any] interface {
	IsZero(a T) bool
	IsOne(a T) bool
	IsMinusOne(a T) bool
}
