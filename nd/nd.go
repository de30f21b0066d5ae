// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nd provides the public API for n-dimensional structures.
//
// The package defines the core types every algebra context consumes:
//   - Shape: dimensions of a structure, row-major by convention
//   - Indexer: bijection between multi-indices and linear offsets
//   - Buffer[T]: flat random-access storage
//   - StructureND[T]: read-only n-dimensional view
//   - BufferND[T]: structure backed by an Indexer and a Buffer
//
// Any type implementing StructureND[T] can be passed to the algebra
// contexts. Types that also implement CanonicalBuffered[T] are read without
// copying.
//
// Example:
//
//	x, _ := nd.FromSlice(nd.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	v, _ := x.Get(1, 2) // 6
package nd

import (
	"github.com/born-ml/kmath/internal/nd"
)

// Shape represents the dimensions of a structure.
// Example: Shape{2, 3} has 6 elements; Shape{} is a rank-0 scalar.
type Shape = nd.Shape

// Indexer maps multi-indices to offsets in a flat buffer.
type Indexer = nd.Indexer

// Buffer is flat random-access storage.
type Buffer[T any] = nd.Buffer[T]

// ArrayBuffer is a Buffer backed by a Go slice.
type ArrayBuffer[T any] = nd.ArrayBuffer[T]

// StructureND is a read-only n-dimensional structure.
type StructureND[T any] = nd.StructureND[T]

// MutableStructureND is a StructureND that supports element writes.
type MutableStructureND[T any] = nd.MutableStructureND[T]

// CanonicalBuffered is implemented by structures that can expose row-major
// contiguous storage without copying.
type CanonicalBuffered[T any] = nd.CanonicalBuffered[T]

// BufferND is a structure backed by an Indexer and a Buffer.
// Every algebra context returns its results as a fresh *BufferND.
type BufferND[T any] = nd.BufferND[T]

// ShapeMismatchError reports the operand shapes of a failed operation.
type ShapeMismatchError = nd.ShapeMismatchError

// Errors reported by structures and algebra contexts.
// Check them with errors.Is.
var (
	ErrShapeMismatch   = nd.ErrShapeMismatch
	ErrIndexOutOfRange = nd.ErrIndexOutOfRange
	ErrInvalidShape    = nd.ErrInvalidShape
	ErrInvalidArgument = nd.ErrInvalidArgument
)

// RowMajor returns the canonical indexer for shape (last index varies fastest).
func RowMajor(shape Shape) (Indexer, error) {
	return nd.RowMajor(shape)
}

// ColumnMajor returns an indexer where the first index varies fastest.
func ColumnMajor(shape Shape) (Indexer, error) {
	return nd.ColumnMajor(shape)
}

// NewBuffer allocates a buffer of size elements filled by init.
func NewBuffer[T any](size int, init func(i int) T) *ArrayBuffer[T] {
	return nd.NewBuffer(size, init)
}

// WrapBuffer wraps data without copying.
func WrapBuffer[T any](data []T) *ArrayBuffer[T] {
	return nd.WrapBuffer(data)
}

// BufferOf returns a buffer holding values.
func BufferOf[T any](values ...T) *ArrayBuffer[T] {
	return nd.BufferOf(values...)
}

// NewBufferND combines an indexer and a buffer of matching size.
func NewBufferND[T any](indexer Indexer, buffer Buffer[T]) (*BufferND[T], error) {
	return nd.NewBufferND(indexer, buffer)
}

// FromSlice creates a row-major structure holding a copy of data.
//
// Example:
//
//	m, err := nd.FromSlice(nd.Shape{2, 2}, []float64{1, 2, 3, 4})
func FromSlice[T any](shape Shape, data []T) (*BufferND[T], error) {
	return nd.FromSlice(shape, data)
}

// MustFromSlice is like FromSlice but panics on error.
// Intended for literals in tests and examples.
func MustFromSlice[T any](shape Shape, data []T) *BufferND[T] {
	b, err := nd.FromSlice(shape, data)
	if err != nil {
		panic(err)
	}
	return b
}

// Wrap creates a row-major structure over data without copying.
func Wrap[T any](shape Shape, data []T) (*BufferND[T], error) {
	return nd.Wrap(shape, data)
}

// Build creates a row-major structure whose element at index is init(index).
func Build[T any](shape Shape, init func(index []int) T) (*BufferND[T], error) {
	return nd.Build(shape, init)
}

// MustBuild is like Build but panics on error.
func MustBuild[T any](shape Shape, init func(index []int) T) *BufferND[T] {
	b, err := nd.Build(shape, init)
	if err != nil {
		panic(err)
	}
	return b
}

// ToBufferND returns a canonical view of s, copying only when s cannot
// expose row-major storage directly.
func ToBufferND[T any](s StructureND[T]) (*BufferND[T], error) {
	return nd.ToBufferND(s)
}

// Copy always returns an independent canonical copy of s.
func Copy[T any](s StructureND[T]) (*BufferND[T], error) {
	return nd.Copy(s)
}

// ArrayOf returns the elements of s in row-major order.
// The slice may alias storage of s; copy it before writing.
func ArrayOf[T any](s StructureND[T]) ([]T, error) {
	return nd.ArrayOf(s)
}

// Values returns the elements of s in row-major order as a new slice.
func Values[T any](s StructureND[T]) []T {
	return nd.Values(s)
}

// ContentEquals reports whether a and b have the same shape and elements.
func ContentEquals[T comparable](a, b StructureND[T]) bool {
	return nd.ContentEquals(a, b)
}

// ContentEqualsFunc is ContentEquals with a custom element comparison.
func ContentEqualsFunc[T any](a, b StructureND[T], eq func(x, y T) bool) bool {
	return nd.ContentEqualsFunc(a, b, eq)
}

// CheckSameShape returns a *ShapeMismatchError if left and right differ.
func CheckSameShape(op string, left, right Shape) error {
	return nd.CheckSameShape(op, left, right)
}
