// Package ndalgebra provides algebra contexts that operate element-wise on
// n-dimensional structures.
//
// Every context returns fresh row-major BufferND results and never aliases an
// input. Binary operations require operands of exactly equal shape and fail
// with nd.ErrShapeMismatch otherwise; combining a structure with a single
// element is a separately named *Scalar operation.
package ndalgebra

import "github.com/born-ml/kmath/internal/nd"

// GroupOps defines additive operations over StructureND[T].
type GroupOps[T any] interface {
	// ToBufferND materializes s (see nd.ToBufferND).
	ToBufferND(s nd.StructureND[T]) (*nd.BufferND[T], error)

	// StructureND builds a structure of the given shape from init.
	StructureND(shape nd.Shape, init func(index []int) T) (*nd.BufferND[T], error)

	Map(a nd.StructureND[T], f func(v T) T) (*nd.BufferND[T], error)
	MapIndexed(a nd.StructureND[T], f func(index []int, v T) T) (*nd.BufferND[T], error)
	Zip(a, b nd.StructureND[T], f func(l, r T) T) (*nd.BufferND[T], error)

	Add(a, b nd.StructureND[T]) (*nd.BufferND[T], error)
	Sub(a, b nd.StructureND[T]) (*nd.BufferND[T], error)
	Neg(a nd.StructureND[T]) (*nd.BufferND[T], error)

	AddScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error)
	SubScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error)
}

// RingOps adds element-wise multiplication.
type RingOps[T any] interface {
	GroupOps[T]

	Mul(a, b nd.StructureND[T]) (*nd.BufferND[T], error)
	MulScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error)

	// PowerInt raises every element to an integer power by repeated squaring.
	// Rings reject negative exponents with nd.ErrInvalidArgument; fields invert.
	PowerInt(a nd.StructureND[T], n int64) (*nd.BufferND[T], error)
}

// FieldOps adds element-wise division and real scaling.
type FieldOps[T any] interface {
	RingOps[T]

	Div(a, b nd.StructureND[T]) (*nd.BufferND[T], error)
	DivScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error)
	// ScalarDiv computes v / a[i] for every element.
	ScalarDiv(v T, a nd.StructureND[T]) (*nd.BufferND[T], error)
	Scale(a nd.StructureND[T], k float64) (*nd.BufferND[T], error)
}

// ExtendedFieldOps adds element-wise transcendental functions.
type ExtendedFieldOps[T any] interface {
	FieldOps[T]

	Exp(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Ln(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Sqrt(a nd.StructureND[T]) (*nd.BufferND[T], error)

	Sin(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Cos(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Tan(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Asin(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Acos(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Atan(a nd.StructureND[T]) (*nd.BufferND[T], error)

	Sinh(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Cosh(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Tanh(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Asinh(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Acosh(a nd.StructureND[T]) (*nd.BufferND[T], error)
	Atanh(a nd.StructureND[T]) (*nd.BufferND[T], error)

	// Power raises every element to a real power.
	// Real contexts fail with nd.ErrInvalidArgument before computing anything
	// if a fractional power meets a negative element.
	Power(a nd.StructureND[T], p float64) (*nd.BufferND[T], error)
}
