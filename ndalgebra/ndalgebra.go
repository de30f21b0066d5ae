// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndalgebra provides the public API for element-wise algebra over
// n-dimensional structures.
//
// A context lifts an element algebra to structures. Operations accept any
// nd.StructureND[T] and return a fresh *nd.BufferND[T]; inputs are never
// modified or aliased. Binary operations require equal shapes and fail with
// nd.ErrShapeMismatch otherwise. Scalar variants (AddScalar, MulScalar, ...)
// are separate methods; shapes are never broadcast implicitly.
//
// Two kinds of contexts exist:
//   - shape-polymorphic contexts (Float64(), Int32(), NewFieldOps(...)) accept
//     operands of any shape
//   - fixed-shape contexts (Float64Field(2, 3), Int64Ring(4)) only accept one
//     shape and provide Zero, One and Number of that shape
//
// Example:
//
//	ops := ndalgebra.Float64()
//	a, _ := nd.FromSlice(nd.Shape{2}, []float64{1, 2})
//	b, _ := nd.FromSlice(nd.Shape{2}, []float64{3, 4})
//	sum, _ := ops.Add(a, b) // [4, 6]
package ndalgebra

import (
	"github.com/born-ml/kmath/algebra"
	"github.com/born-ml/kmath/internal/ndalgebra"
	"github.com/born-ml/kmath/internal/parallel"
)

// Operation sets, from the weakest to the richest.
type (
	GroupOps[T any]         = ndalgebra.GroupOps[T]
	RingOps[T any]          = ndalgebra.RingOps[T]
	FieldOps[T any]         = ndalgebra.FieldOps[T]
	ExtendedFieldOps[T any] = ndalgebra.ExtendedFieldOps[T]
)

// Generic contexts that delegate every element to an algebra.
type (
	BufferedRingOps[T any, A algebra.Ring[T]]                   = ndalgebra.BufferedRingOps[T, A]
	BufferedFieldOps[T any, A algebra.Field[T]]                 = ndalgebra.BufferedFieldOps[T, A]
	BufferedExtendedFieldOps[T any, A algebra.ExtendedField[T]] = ndalgebra.BufferedExtendedFieldOps[T, A]
)

// Float64FieldOps is the specialized float64 context.
type Float64FieldOps = ndalgebra.Float64FieldOps

// Fixed-shape contexts.
type (
	RingND[T any]          = ndalgebra.RingND[T]
	FieldND[T any]         = ndalgebra.FieldND[T]
	ExtendedFieldND[T any] = ndalgebra.ExtendedFieldND[T]
)

// Config controls how the float64 context splits loops across goroutines.
type Config = parallel.Config

// DefaultConfig returns a parallel configuration sized to the CPU count.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential returns a configuration that never starts goroutines.
func Sequential() Config { return parallel.Sequential() }

// NewRingOps lifts a ring to structures.
func NewRingOps[T any, A algebra.Ring[T]](elem A) BufferedRingOps[T, A] {
	return ndalgebra.NewRingOps[T](elem)
}

// NewFieldOps lifts a field to structures.
func NewFieldOps[T any, A algebra.Field[T]](elem A) BufferedFieldOps[T, A] {
	return ndalgebra.NewFieldOps[T](elem)
}

// NewExtendedFieldOps lifts an extended field to structures.
func NewExtendedFieldOps[T any, A algebra.ExtendedField[T]](elem A) BufferedExtendedFieldOps[T, A] {
	return ndalgebra.NewExtendedFieldOps[T](elem)
}

// NewFloat64FieldOps returns a float64 context using cfg for its loops.
//
// Example:
//
//	ops := ndalgebra.NewFloat64FieldOps(ndalgebra.DefaultConfig())
func NewFloat64FieldOps(cfg Config) Float64FieldOps {
	return ndalgebra.NewFloat64FieldOps(cfg)
}

// NewRingND binds a ring context to shape.
func NewRingND[T any](ops RingOps[T], elem algebra.Ring[T], shape ...int) (*RingND[T], error) {
	return ndalgebra.NewRingND(ops, elem, shape...)
}

// NewFieldND binds a field context to shape.
func NewFieldND[T any](ops FieldOps[T], elem algebra.Field[T], shape ...int) (*FieldND[T], error) {
	return ndalgebra.NewFieldND(ops, elem, shape...)
}

// NewExtendedFieldND binds an extended field context to shape.
func NewExtendedFieldND[T any](ops ExtendedFieldOps[T], elem algebra.Field[T], shape ...int) (*ExtendedFieldND[T], error) {
	return ndalgebra.NewExtendedFieldND(ops, elem, shape...)
}

// Float64 returns the sequential shape-polymorphic float64 context.
func Float64() Float64FieldOps { return ndalgebra.Float64() }

// Float64Field returns a float64 context bound to shape.
func Float64Field(shape ...int) (*ExtendedFieldND[float64], error) {
	return ndalgebra.Float64Field(shape...)
}

// Float32 returns the shape-polymorphic float32 context.
func Float32() BufferedExtendedFieldOps[float32, algebra.Float32Field] {
	return ndalgebra.Float32()
}

// Float32Field returns a float32 context bound to shape.
func Float32Field(shape ...int) (*ExtendedFieldND[float32], error) {
	return ndalgebra.Float32Field(shape...)
}

// Complex128 returns the shape-polymorphic complex128 context.
func Complex128() BufferedExtendedFieldOps[complex128, algebra.Complex128Field] {
	return ndalgebra.Complex128()
}

// Complex128Field returns a complex128 context bound to shape.
func Complex128Field(shape ...int) (*ExtendedFieldND[complex128], error) {
	return ndalgebra.Complex128Field(shape...)
}

// Int16 returns the shape-polymorphic int16 ring context.
func Int16() BufferedRingOps[int16, algebra.Int16Ring] { return ndalgebra.Int16() }

// Int16Ring returns an int16 ring context bound to shape.
func Int16Ring(shape ...int) (*RingND[int16], error) { return ndalgebra.Int16Ring(shape...) }

// Int32 returns the shape-polymorphic int32 ring context.
func Int32() BufferedRingOps[int32, algebra.Int32Ring] { return ndalgebra.Int32() }

// Int32Ring returns an int32 ring context bound to shape.
func Int32Ring(shape ...int) (*RingND[int32], error) { return ndalgebra.Int32Ring(shape...) }

// Int64 returns the shape-polymorphic int64 ring context.
func Int64() BufferedRingOps[int64, algebra.Int64Ring] { return ndalgebra.Int64() }

// Int64Ring returns an int64 ring context bound to shape.
func Int64Ring(shape ...int) (*RingND[int64], error) { return ndalgebra.Int64Ring(shape...) }
