package ndalgebra

import (
	"sync"

	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/nd"
)

// RingND is a ring context bound to one shape.
//
// Every operand must have exactly that shape; anything else fails with
// nd.ErrShapeMismatch. Zero and One are computed on first use and shared.
type RingND[T any] struct {
	ops   RingOps[T]
	shape nd.Shape

	zero func() *nd.BufferND[T]
	one  func() *nd.BufferND[T]
}

// NewRingND binds ops to shape. elem supplies the identity elements.
func NewRingND[T any](ops RingOps[T], elem algebra.Ring[T], shape ...int) (*RingND[T], error) {
	s := nd.Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r := &RingND[T]{ops: ops, shape: s}
	r.zero = sync.OnceValue(func() *nd.BufferND[T] { return r.fill(elem.Zero()) })
	r.one = sync.OnceValue(func() *nd.BufferND[T] { return r.fill(elem.One()) })
	return r, nil
}

func (r *RingND[T]) fill(v T) *nd.BufferND[T] {
	b, err := nd.Build(r.shape, func([]int) T { return v })
	if err != nil {
		// The shape was validated on construction.
		panic(err)
	}
	return b
}

func (r *RingND[T]) check(op string, s nd.StructureND[T]) error {
	return nd.CheckSameShape(op, r.shape, s.Shape())
}

func (r *RingND[T]) check2(op string, a, b nd.StructureND[T]) error {
	if err := r.check(op, a); err != nil {
		return err
	}
	return r.check(op, b)
}

// Shape returns a copy of the context shape.
func (r *RingND[T]) Shape() nd.Shape {
	return r.shape.Clone()
}

// Zero returns the additive identity of the context shape.
// The structure is shared between callers and is read-only.
func (r *RingND[T]) Zero() nd.StructureND[T] {
	return r.zero()
}

// One returns the multiplicative identity of the context shape.
// The structure is shared between callers and is read-only.
func (r *RingND[T]) One() nd.StructureND[T] {
	return r.one()
}

// Number returns a fresh structure with every element equal to v.
func (r *RingND[T]) Number(v T) *nd.BufferND[T] {
	return r.fill(v)
}

// Produce builds a structure of the context shape from init.
func (r *RingND[T]) Produce(init func(index []int) T) (*nd.BufferND[T], error) {
	return nd.Build(r.shape, init)
}

func (r *RingND[T]) ToBufferND(s nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := r.check("materialize", s); err != nil {
		return nil, err
	}
	return r.ops.ToBufferND(s)
}

func (r *RingND[T]) StructureND(shape nd.Shape, init func(index []int) T) (*nd.BufferND[T], error) {
	if err := nd.CheckSameShape("structure", r.shape, shape); err != nil {
		return nil, err
	}
	return nd.Build(r.shape, init)
}

func (r *RingND[T]) Map(a nd.StructureND[T], f func(v T) T) (*nd.BufferND[T], error) {
	if err := r.check("map", a); err != nil {
		return nil, err
	}
	return r.ops.Map(a, f)
}

func (r *RingND[T]) MapIndexed(a nd.StructureND[T], f func(index []int, v T) T) (*nd.BufferND[T], error) {
	if err := r.check("map", a); err != nil {
		return nil, err
	}
	return r.ops.MapIndexed(a, f)
}

func (r *RingND[T]) Zip(a, b nd.StructureND[T], f func(x, y T) T) (*nd.BufferND[T], error) {
	if err := r.check2("zip", a, b); err != nil {
		return nil, err
	}
	return r.ops.Zip(a, b, f)
}

func (r *RingND[T]) Add(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := r.check2("add", a, b); err != nil {
		return nil, err
	}
	return r.ops.Add(a, b)
}

func (r *RingND[T]) Sub(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := r.check2("sub", a, b); err != nil {
		return nil, err
	}
	return r.ops.Sub(a, b)
}

func (r *RingND[T]) Neg(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := r.check("neg", a); err != nil {
		return nil, err
	}
	return r.ops.Neg(a)
}

func (r *RingND[T]) AddScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	if err := r.check("add", a); err != nil {
		return nil, err
	}
	return r.ops.AddScalar(a, v)
}

func (r *RingND[T]) SubScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	if err := r.check("sub", a); err != nil {
		return nil, err
	}
	return r.ops.SubScalar(a, v)
}

func (r *RingND[T]) Mul(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := r.check2("mul", a, b); err != nil {
		return nil, err
	}
	return r.ops.Mul(a, b)
}

func (r *RingND[T]) MulScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	if err := r.check("mul", a); err != nil {
		return nil, err
	}
	return r.ops.MulScalar(a, v)
}

func (r *RingND[T]) PowerInt(a nd.StructureND[T], n int64) (*nd.BufferND[T], error) {
	if err := r.check("power", a); err != nil {
		return nil, err
	}
	return r.ops.PowerInt(a, n)
}

// FieldND is a field context bound to one shape.
type FieldND[T any] struct {
	*RingND[T]
	field FieldOps[T]
}

// NewFieldND binds ops to shape.
func NewFieldND[T any](ops FieldOps[T], elem algebra.Field[T], shape ...int) (*FieldND[T], error) {
	r, err := NewRingND[T](ops, elem, shape...)
	if err != nil {
		return nil, err
	}
	return &FieldND[T]{RingND: r, field: ops}, nil
}

func (f *FieldND[T]) Div(a, b nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := f.check2("div", a, b); err != nil {
		return nil, err
	}
	return f.field.Div(a, b)
}

func (f *FieldND[T]) DivScalar(a nd.StructureND[T], v T) (*nd.BufferND[T], error) {
	if err := f.check("div", a); err != nil {
		return nil, err
	}
	return f.field.DivScalar(a, v)
}

func (f *FieldND[T]) ScalarDiv(v T, a nd.StructureND[T]) (*nd.BufferND[T], error) {
	if err := f.check("div", a); err != nil {
		return nil, err
	}
	return f.field.ScalarDiv(v, a)
}

func (f *FieldND[T]) Scale(a nd.StructureND[T], k float64) (*nd.BufferND[T], error) {
	if err := f.check("scale", a); err != nil {
		return nil, err
	}
	return f.field.Scale(a, k)
}

// ExtendedFieldND is an extended field context bound to one shape.
type ExtendedFieldND[T any] struct {
	*FieldND[T]
	ext ExtendedFieldOps[T]
}

// NewExtendedFieldND binds ops to shape.
func NewExtendedFieldND[T any](ops ExtendedFieldOps[T], elem algebra.Field[T], shape ...int) (*ExtendedFieldND[T], error) {
	f, err := NewFieldND[T](ops, elem, shape...)
	if err != nil {
		return nil, err
	}
	return &ExtendedFieldND[T]{FieldND: f, ext: ops}, nil
}

func (e *ExtendedFieldND[T]) unary(op string, a nd.StructureND[T], f func(nd.StructureND[T]) (*nd.BufferND[T], error)) (*nd.BufferND[T], error) {
	if err := e.check(op, a); err != nil {
		return nil, err
	}
	return f(a)
}

func (e *ExtendedFieldND[T]) Exp(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("exp", a, e.ext.Exp)
}

func (e *ExtendedFieldND[T]) Ln(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("ln", a, e.ext.Ln)
}

func (e *ExtendedFieldND[T]) Sqrt(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("sqrt", a, e.ext.Sqrt)
}

func (e *ExtendedFieldND[T]) Sin(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("sin", a, e.ext.Sin)
}

func (e *ExtendedFieldND[T]) Cos(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("cos", a, e.ext.Cos)
}

func (e *ExtendedFieldND[T]) Tan(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("tan", a, e.ext.Tan)
}

func (e *ExtendedFieldND[T]) Asin(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("asin", a, e.ext.Asin)
}

func (e *ExtendedFieldND[T]) Acos(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("acos", a, e.ext.Acos)
}

func (e *ExtendedFieldND[T]) Atan(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("atan", a, e.ext.Atan)
}

func (e *ExtendedFieldND[T]) Sinh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("sinh", a, e.ext.Sinh)
}

func (e *ExtendedFieldND[T]) Cosh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("cosh", a, e.ext.Cosh)
}

func (e *ExtendedFieldND[T]) Tanh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("tanh", a, e.ext.Tanh)
}

func (e *ExtendedFieldND[T]) Asinh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("asinh", a, e.ext.Asinh)
}

func (e *ExtendedFieldND[T]) Acosh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("acosh", a, e.ext.Acosh)
}

func (e *ExtendedFieldND[T]) Atanh(a nd.StructureND[T]) (*nd.BufferND[T], error) {
	return e.unary("atanh", a, e.ext.Atanh)
}

func (e *ExtendedFieldND[T]) Power(a nd.StructureND[T], p float64) (*nd.BufferND[T], error) {
	if err := e.check("power", a); err != nil {
		return nil, err
	}
	return e.ext.Power(a, p)
}
