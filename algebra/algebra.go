// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algebra provides the public API for element algebras.
//
// An algebra describes how single elements combine:
//   - Group[T]: Zero, Add, Sub, Neg
//   - Ring[T]: Group plus One and Mul
//   - Field[T]: Ring plus Div and real Scale
//   - ExtendedField[T]: Field plus transcendental functions and real powers
//
// Primitive algebras are stateless values: Float64Field, Float32Field,
// Complex128Field and the wrapping integer rings. User-defined algebras
// plug into the n-dimensional contexts of package ndalgebra.
//
// Example:
//
//	var f algebra.Float64Field
//	algebra.PowerInt[float64](f, 2, -2) // 0.25
package algebra

import (
	"cmp"
	"iter"

	"github.com/born-ml/kmath/internal/algebra"
)

// Group is an additive group over T.
type Group[T any] = algebra.Group[T]

// Ring adds multiplication with an identity.
type Ring[T any] = algebra.Ring[T]

// Field adds division and scaling by a real number.
type Field[T any] = algebra.Field[T]

// ExtendedField adds transcendental functions and real powers.
type ExtendedField[T any] = algebra.ExtendedField[T]

// IdentityTester is implemented by rings whose identities can be recognized.
// Power functions only take identity shortcuts for such rings.
type IdentityTester[T any] = algebra.IdentityTester[T]

// Integer is the constraint of the primitive integer rings.
type Integer = algebra.Integer

// Primitive algebras.
type (
	Float64Field    = algebra.Float64Field
	Float32Field    = algebra.Float32Field
	Complex128Field = algebra.Complex128Field
)

// IntRing is a ring over a primitive integer type with wrapping arithmetic.
type IntRing[T Integer] = algebra.IntRing[T]

// Integer ring instantiations.
type (
	Int16Ring = algebra.Int16Ring
	Int32Ring = algebra.Int32Ring
	Int64Ring = algebra.Int64Ring
)

// PowerUint raises x to a non-negative power by repeated squaring.
func PowerUint[T any](r Ring[T], x T, n uint64) T {
	return algebra.PowerUint(r, x, n)
}

// PowerInt raises x to an integer power; negative powers divide One by the
// positive power.
func PowerInt[T any](f Field[T], x T, n int64) T {
	return algebra.PowerInt(f, x, n)
}

// PowFloat64 is math.Pow that rejects fractional powers of negative bases
// with nd.ErrInvalidArgument.
func PowFloat64(a, p float64) (float64, error) {
	return algebra.PowFloat64(a, p)
}

// Sum adds up all values of the sequence.
func Sum[T any](g Group[T], values iter.Seq[T]) T {
	return algebra.Sum(g, values)
}

// SumSlice adds up all values of the slice.
func SumSlice[T any](g Group[T], values []T) T {
	return algebra.SumSlice(g, values)
}

// Average returns the arithmetic mean of values, or Zero() for none.
func Average[T any](f Field[T], values []T) T {
	return algebra.Average(f, values)
}

// Abs returns the absolute value of x for ordered element types.
func Abs[T cmp.Ordered](r Ring[T], x T) T {
	return algebra.Abs(r, x)
}
