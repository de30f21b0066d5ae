package nd

import "fmt"

// Buffer is a fixed-length, indexable, linear sequence of elements.
//
// Its length never changes after creation. Any index outside [0, Len()) fails
// with ErrIndexOutOfRange.
type Buffer[T any] interface {
	Len() int
	Get(i int) (T, error)
	Set(i int, value T) error
}

// ArrayBuffer is a Buffer backed by a Go slice.
// Algebra contexts read and write its slice directly for bulk loops.
type ArrayBuffer[T any] struct {
	data []T
}

// Float64Buffer is the buffer type produced by float64 algebra contexts.
type Float64Buffer = ArrayBuffer[float64]

// NewBuffer creates a buffer of the given size, filling element i with init(i).
// A nil init leaves elements at their zero value.
func NewBuffer[T any](size int, init func(i int) T) *ArrayBuffer[T] {
	if size < 0 {
		panic(fmt.Sprintf("buffer size must be >= 0, got %d", size))
	}
	data := make([]T, size)
	if init != nil {
		for i := range data {
			data[i] = init(i)
		}
	}
	return &ArrayBuffer[T]{data: data}
}

// WrapBuffer wraps an existing slice without copying.
//
// WARNING: The buffer and the slice share memory; mutation through either is
// visible through the other.
func WrapBuffer[T any](data []T) *ArrayBuffer[T] {
	return &ArrayBuffer[T]{data: data}
}

// BufferOf creates a buffer holding a copy of values.
func BufferOf[T any](values ...T) *ArrayBuffer[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &ArrayBuffer[T]{data: data}
}

// Len returns the number of elements.
func (b *ArrayBuffer[T]) Len() int {
	return len(b.data)
}

// Get returns element i.
func (b *ArrayBuffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(b.data) {
		var zero T
		return zero, fmt.Errorf("%w: buffer index %d out of bounds for size %d", ErrIndexOutOfRange, i, len(b.data))
	}
	return b.data[i], nil
}

// Set stores value at element i.
func (b *ArrayBuffer[T]) Set(i int, value T) error {
	if i < 0 || i >= len(b.data) {
		return fmt.Errorf("%w: buffer index %d out of bounds for size %d", ErrIndexOutOfRange, i, len(b.data))
	}
	b.data[i] = value
	return nil
}

// Array returns the backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice modify the buffer.
func (b *ArrayBuffer[T]) Array() []T {
	return b.data
}

// Copy returns a deep copy of the buffer.
func (b *ArrayBuffer[T]) Copy() *ArrayBuffer[T] {
	return BufferOf(b.data...)
}

// arrayOf returns the contiguous elements of buf, sharing memory when buf is an ArrayBuffer.
func arrayOf[T any](buf Buffer[T]) ([]T, error) {
	if ab, ok := buf.(*ArrayBuffer[T]); ok {
		return ab.data, nil
	}
	data := make([]T, buf.Len())
	for i := range data {
		v, err := buf.Get(i)
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return data, nil
}
