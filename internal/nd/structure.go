// Package nd provides n-dimensional structures backed by linear buffers.
package nd

import "iter"

// StructureND is a value addressable by a multi-dimensional index with a fixed shape.
//
// Backend adapters integrate foreign storage by implementing this interface.
// Get fails with ErrIndexOutOfRange when the index rank differs from the shape
// rank or a component is out of bounds.
type StructureND[T any] interface {
	Shape() Shape
	Get(index ...int) (T, error)

	// Elements enumerates (index, value) pairs in ascending canonical offset order.
	// The sequence is finite and restartable. It ends early when an element
	// cannot be read, so it may yield fewer than Shape().LinearSize() pairs.
	Elements() iter.Seq2[[]int, T]
}

// MutableStructureND is a StructureND whose elements can be replaced.
type MutableStructureND[T any] interface {
	StructureND[T]
	Set(value T, index ...int) error
}

// CanonicalBuffered is implemented by structures able to expose their storage
// as a row-major buffer without copying.
//
// ok is false when the current layout is not canonical (a strided view,
// column-major storage, ...); callers must then fall back to copying.
type CanonicalBuffered[T any] interface {
	CanonicalBuffer() (buf Buffer[T], ok bool)
}

// ContentEquals reports whether a and b have equal shapes and equal elements.
func ContentEquals[T comparable](a, b StructureND[T]) bool {
	return ContentEqualsFunc(a, b, func(x, y T) bool { return x == y })
}

// ContentEqualsFunc is like ContentEquals but compares elements with eq.
// A structure whose enumeration ends early is never equal to anything.
func ContentEqualsFunc[T any](a, b StructureND[T], eq func(x, y T) bool) bool {
	shape := a.Shape()
	if !shape.Equal(b.Shape()) {
		return false
	}
	seen := 0
	for index, av := range a.Elements() {
		bv, err := b.Get(index...)
		if err != nil || !eq(av, bv) {
			return false
		}
		seen++
	}
	return seen == shape.LinearSize()
}

// Values collects all elements of s in canonical offset order.
// The result is shorter than Shape().LinearSize() when s cannot read some element.
func Values[T any](s StructureND[T]) []T {
	out := make([]T, 0, s.Shape().LinearSize())
	for _, v := range s.Elements() {
		out = append(out, v)
	}
	return out
}
