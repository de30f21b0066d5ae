package ndalgebra

import (
	"fmt"

	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/nd"
)

// flat materializes s and returns its row-major layout and elements.
// The returned slice may alias s and must only be read.
func flat[T any](s nd.StructureND[T]) (nd.Indexer, []T, error) {
	b, err := nd.ToBufferND(s)
	if err != nil {
		return nil, nil, err
	}
	data, err := nd.ArrayOf[T](b)
	if err != nil {
		return nil, nil, err
	}
	return b.Indexer(), data, nil
}

// flat2 materializes two operands of equal shape.
func flat2[T any](op string, a, b nd.StructureND[T]) (nd.Indexer, []T, []T, error) {
	if err := nd.CheckSameShape(op, a.Shape(), b.Shape()); err != nil {
		return nil, nil, nil, err
	}
	indexer, left, err := flat(a)
	if err != nil {
		return nil, nil, nil, err
	}
	_, right, err := flat(b)
	if err != nil {
		return nil, nil, nil, err
	}
	return indexer, left, right, nil
}

func result[T any](indexer nd.Indexer, data []T) (*nd.BufferND[T], error) {
	return nd.NewBufferND[T](indexer, nd.WrapBuffer(data))
}

func mapFlat[T any](a nd.StructureND[T], f func(v T) T) (*nd.BufferND[T], error) {
	indexer, data, err := flat(a)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(data))
	for i, v := range data {
		out[i] = f(v)
	}
	return result(indexer, out)
}

func zipFlat[T any](op string, a, b nd.StructureND[T], f func(l, r T) T) (*nd.BufferND[T], error) {
	indexer, left, right, err := flat2(op, a, b)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(left))
	for i := range left {
		out[i] = f(left[i], right[i])
	}
	return result(indexer, out)
}

// BufferedRingOps applies a scalar Ring element-wise over materialized buffers.
type BufferedRingOps[T any, A algebra.Ring[T]] struct {
	elem A
}

// NewRingOps returns element-wise operations for any ring.
func NewRingOps[T any, A algebra.Ring[T]](elem A) BufferedRingOps[T, A] {
	return BufferedRingOps[T, A]{elem: elem}
}

// Algebra returns the element algebra.
func (o BufferedRingOps[T, A]) Algebra() A {
	return o.elem
}

// ToBufferND materializes s.
func (o BufferedRingOps[T, A]) ToBufferND(s nd.StructureND[T]) (*nd.BufferND[T], error) {
	return nd.ToBufferND(s)
}

// StructureND builds a row-major structure from init.
func (o BufferedRingOps[T, A]) StructureND(shape nd.Shape, init func(index []int) T) (*nd.BufferND[T], error) {
	return nd.Build(shape, init)
}

// Map applies f to every element.
func (o BufferedRingOps[T, A]) Map(a nd.StructureND[T], f func(v T) T) (*nd.BufferND[T], error) {
	return mapFlat(a, f)
}

// MapIndexed applies f to every element together with its index.
func (o BufferedRingOps[T, A]) MapIndexed(a nd.StructureND[T], f func(index []int, v T) T) (*nd.BufferND[T], error) {
	indexer, data, err := flat(a)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(data))
	i := 0
	for index := range indexer.Indices() {
		out[i] = f(index, data[i])
		i++
	}
	return result(indexer, out)
}

// Zip combines the elements of a and b pairwise. Shapes must be equal.
func (o BufferedRingOps[T, A]) Zip(a, b nd.StructureND[T], f func(l, r T) T) (*nd.BufferND[T], error) {
	return zipFlat("zip", a, b, f)
}

func (o BufferedRingOps[T, A]) Add(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	return zipFlat("add", a, b, o.elem.Add)
}

func (o BufferedRingOps[T, A]) Sub(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	return zipFlat("sub", a, b, o.elem.Sub)
}

func (o BufferedRingOps[T, A]) Neg(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Neg)
}

func (o BufferedRingOps[T, A]) AddScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Add(x, v) })
}

func (o BufferedRingOps[T, A]) SubScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Sub(x, v) })
}

func (o BufferedRingOps[T, A]) Mul(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	return zipFlat("mul", a, b, o.elem.Mul)
}

func (o BufferedRingOps[T, A]) MulScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Mul(x, v) })
}

// PowerInt raises every element to the non-negative power n.
func (o BufferedRingOps[T, A]) PowerInt(a nd.StructureND[T], n int64) (*nd.BufferND[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative power %d in a ring", nd.ErrInvalidArgument, n)
	}
	var r algebra.Ring[T] = o.elem
	return mapFlat(a, func(x T) T { return algebra.PowerUint(r, x, uint64(n)) })
}

// BufferedFieldOps applies a scalar Field element-wise over materialized buffers.
type BufferedFieldOps[T any, A algebra.Field[T]] struct {
	BufferedRingOps[T, A]
}

// NewFieldOps returns element-wise operations for any field.
func NewFieldOps[T any, A algebra.Field[T]](elem A) BufferedFieldOps[T, A] {
	return BufferedFieldOps[T, A]{BufferedRingOps[T, A]{elem: elem}}
}

func (o BufferedFieldOps[T, A]) Div(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	return zipFlat("div", a, b, o.elem.Div)
}

func (o BufferedFieldOps[T, A]) DivScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Div(x, v) })
}

func (o BufferedFieldOps[T, A]) ScalarDiv(v T, a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Div(v, x) })
}

func (o BufferedFieldOps[T, A]) Scale(a nd.StructureND[T], k float64) (*nd.BufferND[T], error) {
	return mapFlat(a, func(x T) T { return o.elem.Scale(x, k) })
}

// PowerInt raises every element to the power n; negative n inverts.
func (o BufferedFieldOps[T, A]) PowerInt(a nd.StructureND[T], n int64) (*nd.BufferND[T], error) {
	var f algebra.Field[T] = o.elem
	return mapFlat(a, func(x T) T { return algebra.PowerInt(f, x, n) })
}

// BufferedExtendedFieldOps applies a scalar ExtendedField element-wise.
type BufferedExtendedFieldOps[T any, A algebra.ExtendedField[T]] struct {
	BufferedFieldOps[T, A]
}

// NewExtendedFieldOps returns element-wise operations for any extended field.
func NewExtendedFieldOps[T any, A algebra.ExtendedField[T]](elem A) BufferedExtendedFieldOps[T, A] {
	return BufferedExtendedFieldOps[T, A]{BufferedFieldOps[T, A]{BufferedRingOps[T, A]{elem: elem}}}
}

func (o BufferedExtendedFieldOps[T, A]) Exp(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Exp)
}

func (o BufferedExtendedFieldOps[T, A]) Ln(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Ln)
}

func (o BufferedExtendedFieldOps[T, A]) Sqrt(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Sqrt)
}

func (o BufferedExtendedFieldOps[T, A]) Sin(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Sin)
}

func (o BufferedExtendedFieldOps[T, A]) Cos(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Cos)
}

func (o BufferedExtendedFieldOps[T, A]) Tan(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Tan)
}

func (o BufferedExtendedFieldOps[T, A]) Asin(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Asin)
}

func (o BufferedExtendedFieldOps[T, A]) Acos(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Acos)
}

func (o BufferedExtendedFieldOps[T, A]) Atan(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Atan)
}

func (o BufferedExtendedFieldOps[T, A]) Sinh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Sinh)
}

func (o BufferedExtendedFieldOps[T, A]) Cosh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Cosh)
}

func (o BufferedExtendedFieldOps[T, A]) Tanh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Tanh)
}

func (o BufferedExtendedFieldOps[T, A]) Asinh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Asinh)
}

func (o BufferedExtendedFieldOps[T, A]) Acosh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Acosh)
}

func (o BufferedExtendedFieldOps[T, A]) Atanh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return mapFlat(a, o.elem.Atanh)
}

// Power raises every element to the real power p.
// The first element the algebra rejects fails the whole operation.
func (o BufferedExtendedFieldOps[T, A]) Power(a nd.StructureND[T], p float64) (*nd.BufferND[T], error) {
	indexer, data, err := flat(a)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(data))
	for i, v := range data {
		if out[i], err = o.elem.Pow(v, p); err != nil {
			return nil, fmt.Errorf("power: element %d: %w", i, err)
		}
	}
	return result(indexer, out)
}
