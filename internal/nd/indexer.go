package nd

import (
	"fmt"
	"iter"
	"slices"
)

// Indexer maps multi-dimensional indices to linear buffer offsets and back.
//
// Implementations are pure functions of their shape. Offset and Index are
// mutually inverse over the valid index space.
type Indexer interface {
	// Shape returns the shape the indexer was built for.
	Shape() Shape

	// Strides returns the offset increment per step along each dimension.
	Strides() []int

	// LinearSize returns the number of valid offsets.
	LinearSize() int

	// Offset returns the linear offset of index.
	// Fails with ErrIndexOutOfRange when the rank or a per-dimension bound is violated.
	Offset(index ...int) (int, error)

	// Index returns the multi-dimensional index stored at offset.
	Index(offset int) ([]int, error)

	// Indices enumerates all valid indices in ascending offset order.
	// The sequence is finite and can be ranged over any number of times;
	// every yielded slice is freshly allocated and owned by the caller.
	Indices() iter.Seq[[]int]

	// Canonical reports whether the layout is row-major.
	Canonical() bool
}

// strides is the shared implementation of row-major and column-major indexers.
type strides struct {
	shape    Shape
	strides  []int
	size     int
	rowMajor bool
}

// RowMajor creates the canonical indexer: the last dimension varies fastest (C order).
func RowMajor(shape Shape) (Indexer, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &strides{
		shape:    shape.Clone(),
		strides:  shape.RowMajorStrides(),
		size:     shape.LinearSize(),
		rowMajor: true,
	}, nil
}

// ColumnMajor creates an indexer where the first dimension varies fastest (Fortran order).
func ColumnMajor(shape Shape) (Indexer, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &strides{
		shape:    shape.Clone(),
		strides:  shape.ColumnMajorStrides(),
		size:     shape.LinearSize(),
		rowMajor: false,
	}, nil
}

// MustRowMajor is like RowMajor but panics on an invalid shape.
func MustRowMajor(shape Shape) Indexer {
	idx, err := RowMajor(shape)
	if err != nil {
		panic(err)
	}
	return idx
}

func (s *strides) Shape() Shape { return s.shape.Clone() }

func (s *strides) Strides() []int { return slices.Clone(s.strides) }

func (s *strides) LinearSize() int { return s.size }

func (s *strides) Canonical() bool { return s.rowMajor }

func (s *strides) Offset(index ...int) (int, error) {
	if len(index) != len(s.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(s.shape), len(index))
	}

	offset := 0
	for i, idx := range index {
		if idx < 0 || idx >= s.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)",
				ErrIndexOutOfRange, idx, i, s.shape[i])
		}
		offset += idx * s.strides[i]
	}
	return offset, nil
}

func (s *strides) Index(offset int) ([]int, error) {
	if offset < 0 || offset >= s.size {
		return nil, fmt.Errorf("%w: offset %d out of bounds for linear size %d", ErrIndexOutOfRange, offset, s.size)
	}
	return s.decode(offset), nil
}

// decode assumes 0 <= offset < size.
func (s *strides) decode(offset int) []int {
	ndim := len(s.shape)
	index := make([]int, ndim)
	if s.rowMajor {
		for dim := 0; dim < ndim; dim++ {
			index[dim] = offset / s.strides[dim]
			offset %= s.strides[dim]
		}
		return index
	}
	for dim := ndim - 1; dim >= 0; dim-- {
		index[dim] = offset / s.strides[dim]
		offset %= s.strides[dim]
	}
	return index
}

func (s *strides) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for offset := 0; offset < s.size; offset++ {
			if !yield(s.decode(offset)) {
				return
			}
		}
	}
}

func (s *strides) String() string {
	order := "row-major"
	if !s.rowMajor {
		order = "column-major"
	}
	return fmt.Sprintf("%s%v", order, s.shape)
}
