package ndalgebra

import (
	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/parallel"
)

// Shape-polymorphic contexts. They hold no mutable state and are safe for
// concurrent use.
var (
	float64Ops    = NewFloat64FieldOps(parallel.Sequential())
	float32Ops    = NewExtendedFieldOps[float32](algebra.Float32Field{})
	complex128Ops = NewExtendedFieldOps[complex128](algebra.Complex128Field{})
	int16Ops      = NewRingOps[int16](algebra.Int16Ring{})
	int32Ops      = NewRingOps[int32](algebra.Int32Ring{})
	int64Ops      = NewRingOps[int64](algebra.Int64Ring{})
)

// Compile-time checks.
var (
	_ ExtendedFieldOps[float64]    = Float64FieldOps{}
	_ ExtendedFieldOps[float32]    = BufferedExtendedFieldOps[float32, algebra.Float32Field]{}
	_ ExtendedFieldOps[complex128] = BufferedExtendedFieldOps[complex128, algebra.Complex128Field]{}
	_ RingOps[int16]               = BufferedRingOps[int16, algebra.Int16Ring]{}
	_ RingOps[int64]               = (*RingND[int64])(nil)
	_ FieldOps[float32]            = (*FieldND[float32])(nil)
	_ ExtendedFieldOps[float64]    = (*ExtendedFieldND[float64])(nil)
)

// Float64 returns the shape-polymorphic float64 context.
// Loops run on the calling goroutine; see NewFloat64FieldOps for parallel loops.
func Float64() Float64FieldOps { return float64Ops }

// Float64Field returns a float64 context bound to shape.
func Float64Field(shape ...int) (*ExtendedFieldND[float64], error) {
	return NewExtendedFieldND[float64](float64Ops, algebra.Float64Field{}, shape...)
}

// Float32 returns the shape-polymorphic float32 context.
func Float32() BufferedExtendedFieldOps[float32, algebra.Float32Field] { return float32Ops }

// Float32Field returns a float32 context bound to shape.
func Float32Field(shape ...int) (*ExtendedFieldND[float32], error) {
	return NewExtendedFieldND[float32](float32Ops, algebra.Float32Field{}, shape...)
}

// Complex128 returns the shape-polymorphic complex128 context.
func Complex128() BufferedExtendedFieldOps[complex128, algebra.Complex128Field] {
	return complex128Ops
}

// Complex128Field returns a complex128 context bound to shape.
func Complex128Field(shape ...int) (*ExtendedFieldND[complex128], error) {
	return NewExtendedFieldND[complex128](complex128Ops, algebra.Complex128Field{}, shape...)
}

// Int16 returns the shape-polymorphic int16 ring context. Arithmetic wraps.
func Int16() BufferedRingOps[int16, algebra.Int16Ring] { return int16Ops }

// Int16Ring returns an int16 ring context bound to shape.
func Int16Ring(shape ...int) (*RingND[int16], error) {
	return NewRingND[int16](int16Ops, algebra.Int16Ring{}, shape...)
}

// Int32 returns the shape-polymorphic int32 ring context.
func Int32() BufferedRingOps[int32, algebra.Int32Ring] { return int32Ops }

// Int32Ring returns an int32 ring context bound to shape.
func Int32Ring(shape ...int) (*RingND[int32], error) {
	return NewRingND[int32](int32Ops, algebra.Int32Ring{}, shape...)
}

// Int64 returns the shape-polymorphic int64 ring context.
func Int64() BufferedRingOps[int64, algebra.Int64Ring] { return int64Ops }

// Int64Ring returns an int64 ring context bound to shape.
func Int64Ring(shape ...int) (*RingND[int64], error) {
	return NewRingND[int64](int64Ops, algebra.Int64Ring{}, shape...)
}
