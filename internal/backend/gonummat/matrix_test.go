package gonummat

import (
	"testing"

	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/ndalgebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrixGetSet(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m := NewMatrix(d)

	assert.Equal(t, nd.Shape{2, 3}, m.Shape())

	v, err := m.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, m.Set(-1, 0, 1))
	assert.Equal(t, -1.0, d.At(0, 1))

	_, err = m.Get(2, 0)
	assert.ErrorIs(t, err, nd.ErrIndexOutOfRange)
	_, err = m.Get(0)
	assert.ErrorIs(t, err, nd.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, 3), nd.ErrIndexOutOfRange)

	assert.Equal(t, []float64{1, -1, 3, 4, 5, 6}, nd.Values[float64](m))
}

func TestMaterializePackedMatrixIsZeroCopy(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	b, err := nd.ToBufferND[float64](NewMatrix(d))
	require.NoError(t, err)
	require.NoError(t, b.Set(40, 1, 1))
	assert.Equal(t, 40.0, d.At(1, 1))
}

func TestMaterializeSubMatrixCopies(t *testing.T) {
	d := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	view := d.Slice(0, 2, 1, 3).(*mat.Dense)
	m := NewMatrix(view)

	_, ok := m.CanonicalBuffer()
	assert.False(t, ok)

	b, err := nd.ToBufferND[float64](m)
	require.NoError(t, err)
	assert.Equal(t, nd.Shape{2, 2}, b.Shape())
	assert.Equal(t, []float64{2, 3, 5, 6}, nd.Values[float64](b))

	require.NoError(t, b.Set(0, 0, 0))
	assert.Equal(t, 2.0, d.At(0, 1), "copy must not alias the view")
}

func TestFromStructure(t *testing.T) {
	b, err := nd.FromSlice(nd.Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	d, err := FromStructure(b)
	require.NoError(t, err)
	d.Set(0, 0, 10)
	v, err := b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "canonical structures share storage")

	m := NewMatrix(d)
	same, err := FromStructure(m)
	require.NoError(t, err)
	assert.Same(t, d, same)

	cube, err := nd.FromSlice(nd.Shape{1, 1, 1}, []float64{1})
	require.NoError(t, err)
	_, err = FromStructure(cube)
	assert.ErrorIs(t, err, nd.ErrInvalidShape)

	empty, err := nd.FromSlice(nd.Shape{0, 2}, []float64{})
	require.NoError(t, err)
	_, err = FromStructure(empty)
	assert.ErrorIs(t, err, nd.ErrInvalidShape)
}

func TestMatMul(t *testing.T) {
	a, err := nd.FromSlice(nd.Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b := NewMatrix(mat.NewDense(2, 2, []float64{5, 6, 7, 8}))

	c, err := MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, nd.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{19, 22, 43, 50}, nd.Values[float64](c))

	row, err := nd.FromSlice(nd.Shape{1, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	col, err := nd.FromSlice(nd.Shape{3, 1}, []float64{4, 5, 6})
	require.NoError(t, err)
	dot, err := MatMul(row, col)
	require.NoError(t, err)
	assert.Equal(t, []float64{32}, nd.Values[float64](dot))

	_, err = MatMul(row, row)
	assert.ErrorIs(t, err, nd.ErrShapeMismatch)
}

func TestMatrixInAlgebraContext(t *testing.T) {
	m := NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	b, err := nd.FromSlice(nd.Shape{2, 2}, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	sum, err := ndalgebra.Float64().Add(m, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5}, nd.Values[float64](sum))

	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "inputs are never mutated")
}
