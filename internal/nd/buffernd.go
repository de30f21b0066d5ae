package nd

import (
	"fmt"
	"iter"
	"strings"
)

// BufferND is a StructureND backed by exactly one Buffer and one Indexer.
//
// Get(index) reads buffer[indexer.Offset(index)]. Two BufferND values with
// equal shapes and elements are data-equal (see ContentEquals) but are never
// assumed to be the same object.
type BufferND[T any] struct {
	indexer Indexer
	buffer  Buffer[T]
}

// NewBufferND pairs an indexer with a buffer of matching length.
func NewBufferND[T any](indexer Indexer, buffer Buffer[T]) (*BufferND[T], error) {
	if buffer.Len() != indexer.LinearSize() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but buffer has %d",
			ErrInvalidShape, indexer.Shape(), indexer.LinearSize(), buffer.Len())
	}
	return &BufferND[T]{indexer: indexer, buffer: buffer}, nil
}

// FromSlice creates a row-major BufferND from a Go slice.
// The slice is copied.
func FromSlice[T any](shape Shape, data []T) (*BufferND[T], error) {
	indexer, err := RowMajor(shape)
	if err != nil {
		return nil, err
	}
	return NewBufferND[T](indexer, BufferOf(data...))
}

// Build creates a row-major BufferND, evaluating init once per index in offset order.
func Build[T any](shape Shape, init func(index []int) T) (*BufferND[T], error) {
	indexer, err := RowMajor(shape)
	if err != nil {
		return nil, err
	}
	buf := NewBuffer[T](indexer.LinearSize(), nil)
	i := 0
	for index := range indexer.Indices() {
		buf.data[i] = init(index)
		i++
	}
	return &BufferND[T]{indexer: indexer, buffer: buf}, nil
}

// Shape returns the structure's shape.
func (b *BufferND[T]) Shape() Shape {
	return b.indexer.Shape()
}

// Indexer returns the layout of the structure.
func (b *BufferND[T]) Indexer() Indexer {
	return b.indexer
}

// Buffer returns the underlying buffer (zero-copy).
func (b *BufferND[T]) Buffer() Buffer[T] {
	return b.buffer
}

// Get returns the element at the given index.
func (b *BufferND[T]) Get(index ...int) (T, error) {
	offset, err := b.indexer.Offset(index...)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.buffer.Get(offset)
}

// Set stores value at the given index.
func (b *BufferND[T]) Set(value T, index ...int) error {
	offset, err := b.indexer.Offset(index...)
	if err != nil {
		return err
	}
	return b.buffer.Set(offset, value)
}

// Elements enumerates (index, value) pairs in ascending canonical offset order.
// The sequence stops at the first offset the buffer fails to read.
func (b *BufferND[T]) Elements() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		canonical := b.indexer
		if !canonical.Canonical() {
			canonical = MustRowMajor(b.indexer.Shape())
		}
		for index := range canonical.Indices() {
			offset, err := b.indexer.Offset(index...)
			if err != nil {
				return
			}
			v, err := b.buffer.Get(offset)
			if err != nil {
				return
			}
			if !yield(index, v) {
				return
			}
		}
	}
}

// CanonicalBuffer exposes the buffer when the layout is row-major.
func (b *BufferND[T]) CanonicalBuffer() (Buffer[T], bool) {
	if !b.indexer.Canonical() {
		return nil, false
	}
	return b.buffer, true
}

// String returns a compact representation with shape and values.
func (b *BufferND[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BufferND%v(", b.Shape())
	i := 0
	for _, v := range b.Elements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == 16 {
			sb.WriteString("...")
			break
		}
		fmt.Fprintf(&sb, "%v", v)
		i++
	}
	sb.WriteByte(')')
	return sb.String()
}
