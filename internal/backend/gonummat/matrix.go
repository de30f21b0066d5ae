// Package gonummat adapts gonum dense matrices to n-dimensional structures.
package gonummat

import (
	"fmt"
	"iter"

	"github.com/born-ml/kmath/internal/nd"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a rank-2 MutableStructureND view of a *mat.Dense.
// Reads and writes go straight to the matrix.
type Matrix struct {
	dense *mat.Dense
}

// Compile-time checks.
var (
	_ nd.MutableStructureND[float64] = (*Matrix)(nil)
	_ nd.CanonicalBuffered[float64]  = (*Matrix)(nil)
)

// NewMatrix wraps d without copying.
func NewMatrix(d *mat.Dense) *Matrix {
	return &Matrix{dense: d}
}

// Dense returns the wrapped matrix.
func (m *Matrix) Dense() *mat.Dense {
	return m.dense
}

// Shape returns [rows, cols].
func (m *Matrix) Shape() nd.Shape {
	r, c := m.dense.Dims()
	return nd.Shape{r, c}
}

func (m *Matrix) check(index []int) error {
	r, c := m.dense.Dims()
	if len(index) != 2 || index[0] < 0 || index[0] >= r || index[1] < 0 || index[1] >= c {
		return fmt.Errorf("%w: index %v for matrix of shape [%d, %d]", nd.ErrIndexOutOfRange, index, r, c)
	}
	return nil
}

// Get returns the element at [row, col].
func (m *Matrix) Get(index ...int) (float64, error) {
	if err := m.check(index); err != nil {
		return 0, err
	}
	return m.dense.At(index[0], index[1]), nil
}

// Set stores value at [row, col].
func (m *Matrix) Set(value float64, index ...int) error {
	if err := m.check(index); err != nil {
		return err
	}
	m.dense.Set(index[0], index[1], value)
	return nil
}

// Elements enumerates the matrix row by row.
func (m *Matrix) Elements() iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		r, c := m.dense.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if !yield([]int{i, j}, m.dense.At(i, j)) {
					return
				}
			}
		}
	}
}

// CanonicalBuffer exposes the backing slice when rows are packed without gaps.
// Sub-matrix views have a larger stride and are copied on materialization.
func (m *Matrix) CanonicalBuffer() (nd.Buffer[float64], bool) {
	raw := m.dense.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil, false
	}
	return nd.WrapBuffer(raw.Data[:raw.Rows*raw.Cols]), true
}

// FromStructure converts a rank-2 structure into a *mat.Dense.
// The matrix shares storage with s when s is canonically buffer-backed.
func FromStructure(s nd.StructureND[float64]) (*mat.Dense, error) {
	shape := s.Shape()
	if shape.Rank() != 2 {
		return nil, fmt.Errorf("%w: matrix requires rank 2, got shape %v", nd.ErrInvalidShape, shape)
	}
	if shape[0] == 0 || shape[1] == 0 {
		return nil, fmt.Errorf("%w: matrix dimensions must be positive, got %v", nd.ErrInvalidShape, shape)
	}
	if m, ok := s.(*Matrix); ok {
		return m.dense, nil
	}
	data, err := nd.ArrayOf(s)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// MatMul computes the matrix product a·b.
func MatMul(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	as, bs := a.Shape(), b.Shape()
	if as.Rank() != 2 || bs.Rank() != 2 || as[1] != bs[0] {
		return nil, &nd.ShapeMismatchError{Op: "matmul", Left: as, Right: bs}
	}
	da, err := FromStructure(a)
	if err != nil {
		return nil, err
	}
	db, err := FromStructure(b)
	if err != nil {
		return nil, err
	}

	var c mat.Dense
	c.Mul(da, db)
	return nd.Wrap(nd.Shape{as[0], bs[1]}, c.RawMatrix().Data)
}
