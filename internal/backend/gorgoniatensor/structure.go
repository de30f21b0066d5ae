// Package gorgoniatensor adapts gorgonia dense tensors to n-dimensional structures.
package gorgoniatensor

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/born-ml/kmath/internal/nd"
	"gorgonia.org/tensor"
)

// Structure is a MutableStructureND view of a *tensor.Dense holding T values.
type Structure[T any] struct {
	dense   *tensor.Dense
	indexer nd.Indexer
}

// Wrap views d as a structure without copying. The tensor's dtype must be T.
func Wrap[T any](d *tensor.Dense) (*Structure[T], error) {
	if want := reflect.TypeFor[T](); d.Dtype().Type != want {
		return nil, fmt.Errorf("%w: tensor of %v could not be viewed as %v", nd.ErrInvalidArgument, d.Dtype(), want)
	}
	indexer, err := nd.RowMajor(nd.Shape(d.Shape()).Clone())
	if err != nil {
		return nil, err
	}
	return &Structure[T]{dense: d, indexer: indexer}, nil
}

// Dense returns the wrapped tensor.
func (s *Structure[T]) Dense() *tensor.Dense {
	return s.dense
}

// Shape returns the tensor shape.
func (s *Structure[T]) Shape() nd.Shape {
	return s.indexer.Shape()
}

// Get returns the element at index.
func (s *Structure[T]) Get(index ...int) (T, error) {
	var zero T
	if _, err := s.indexer.Offset(index...); err != nil {
		return zero, err
	}
	v, err := s.dense.At(index...)
	if err != nil {
		return zero, fmt.Errorf("gorgonia: %w", err)
	}
	return v.(T), nil
}

// Set stores value at index.
func (s *Structure[T]) Set(value T, index ...int) error {
	if _, err := s.indexer.Offset(index...); err != nil {
		return err
	}
	if err := s.dense.SetAt(value, index...); err != nil {
		return fmt.Errorf("gorgonia: %w", err)
	}
	return nil
}

// Elements enumerates the tensor in row-major order.
// It stops at the first element the tensor refuses to read.
func (s *Structure[T]) Elements() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for index := range s.indexer.Indices() {
			v, err := s.Get(index...)
			if err != nil {
				return
			}
			if !yield(index, v) {
				return
			}
		}
	}
}

// CanonicalBuffer exposes the backing slice of a packed row-major tensor.
// Views, transposes and column-major tensors report false.
func (s *Structure[T]) CanonicalBuffer() (nd.Buffer[T], bool) {
	d := s.dense
	if d.IsMaterializable() || s.indexer.Shape().Rank() == 0 {
		return nil, false
	}
	order := d.DataOrder()
	if !order.IsRowMajor() || !order.IsContiguous() {
		return nil, false
	}
	data, ok := d.Data().([]T)
	if !ok || len(data) != s.indexer.LinearSize() {
		return nil, false
	}
	return nd.WrapBuffer(data), true
}

// FromStructure converts s into a *tensor.Dense.
// The tensor shares storage with s when s is canonically buffer-backed.
func FromStructure[T any](s nd.StructureND[T]) (*tensor.Dense, error) {
	if st, ok := s.(*Structure[T]); ok {
		return st.dense, nil
	}
	shape := s.Shape()
	if shape.LinearSize() == 0 {
		return nil, fmt.Errorf("%w: gorgonia tensors could not be empty, got shape %v", nd.ErrInvalidShape, shape)
	}
	data, err := nd.ArrayOf(s)
	if err != nil {
		return nil, err
	}
	if shape.Rank() == 0 {
		return tensor.New(tensor.FromScalar(data[0])), nil
	}
	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data)), nil
}
