package nd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeLinearSize(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{2, 3}, 6},     // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{3, 0}, 0},     // Empty
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.shape.LinearSize(), "Shape%v.LinearSize()", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	for _, s := range []Shape{{}, {1}, {3, 4}, {0}, {2, 0, 3}} {
		assert.NoError(t, s.Validate(), "Shape%v", s)
	}
	for _, s := range []Shape{{-1}, {3, -4}} {
		err := s.Validate()
		assert.ErrorIs(t, err, ErrInvalidShape, "Shape%v", s)
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{6}, Shape{2, 3}, false}, // same linear size is not enough
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.equal, tt.a.Equal(tt.b), "Shape%v.Equal(%v)", tt.a, tt.b)
	}
}

func TestStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		rowMajor []int
		colMajor []int
	}{
		{Shape{4}, []int{1}, []int{1}},
		{Shape{3, 4}, []int{4, 1}, []int{1, 3}},
		{Shape{2, 3, 4}, []int{12, 4, 1}, []int{1, 2, 6}},
		{Shape{}, []int{}, []int{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rowMajor, tt.shape.RowMajorStrides(), "row-major %v", tt.shape)
		assert.Equal(t, tt.colMajor, tt.shape.ColumnMajorStrides(), "column-major %v", tt.shape)
	}
}

func TestIndexerAccessorsReturnCopies(t *testing.T) {
	idx := MustRowMajor(Shape{2, 3})
	idx.Shape()[0] = 9
	idx.Strides()[0] = 100

	assert.Equal(t, Shape{2, 3}, idx.Shape())
	assert.Equal(t, []int{3, 1}, idx.Strides())
	off, err := idx.Offset(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, off)
	_, err = idx.Offset(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	b, err := FromSlice(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b.Shape()[1] = 7
	assert.Equal(t, Shape{2, 2}, b.Shape())
	v, err := b.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestRowMajorOffset(t *testing.T) {
	idx, err := RowMajor(Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 6, idx.LinearSize())

	offset, err := idx.Offset(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, offset)

	index, err := idx.Index(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, index)
	assert.True(t, idx.Canonical())
}

func TestColumnMajorOffset(t *testing.T) {
	idx, err := ColumnMajor(Shape{2, 3})
	require.NoError(t, err)

	offset, err := idx.Offset(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1+2*2, offset)
	assert.False(t, idx.Canonical())
}

func TestIndexerInvalidShape(t *testing.T) {
	_, err := RowMajor(Shape{2, -1})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = ColumnMajor(Shape{-3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestIndexerOutOfRange(t *testing.T) {
	idx := MustRowMajor(Shape{2, 3})

	tests := []struct {
		name  string
		index []int
	}{
		{"too few", []int{1}},
		{"too many", []int{1, 1, 1}},
		{"negative", []int{-1, 0}},
		{"past end", []int{0, 3}},
		{"past first", []int{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idx.Offset(tt.index...)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}

	_, err := idx.Index(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = idx.Index(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIndexerRoundTrip(t *testing.T) {
	shapes := []Shape{{}, {1}, {7}, {2, 3}, {3, 1, 4}, {2, 3, 4, 5}}
	builders := map[string]func(Shape) (Indexer, error){
		"row-major":    RowMajor,
		"column-major": ColumnMajor,
	}

	for name, build := range builders {
		for _, shape := range shapes {
			idx, err := build(shape)
			require.NoError(t, err)

			for o := 0; o < idx.LinearSize(); o++ {
				index, err := idx.Index(o)
				require.NoError(t, err)
				back, err := idx.Offset(index...)
				require.NoError(t, err)
				assert.Equal(t, o, back, "%s %v offset %d", name, shape, o)
			}

			seen := make(map[int]bool)
			for index := range idx.Indices() {
				o, err := idx.Offset(index...)
				require.NoError(t, err)
				assert.False(t, seen[o], "%s %v: offset %d produced twice", name, shape, o)
				seen[o] = true

				again, err := idx.Index(o)
				require.NoError(t, err)
				assert.Equal(t, index, again)
			}
			assert.Len(t, seen, idx.LinearSize())
		}
	}
}

func TestIndicesOrderAndRestart(t *testing.T) {
	idx := MustRowMajor(Shape{2, 2})
	expected := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	for pass := 0; pass < 2; pass++ {
		var got [][]int
		for index := range idx.Indices() {
			got = append(got, index)
		}
		assert.Equal(t, expected, got, "pass %d", pass)
	}

	col, err := ColumnMajor(Shape{2, 2})
	require.NoError(t, err)
	var got [][]int
	for index := range col.Indices() {
		got = append(got, index)
	}
	// Ascending offset order of a column-major layout walks the first axis fastest.
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)
}

func TestIndicesEarlyBreak(t *testing.T) {
	idx := MustRowMajor(Shape{10, 10})
	count := 0
	for range idx.Indices() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestScalarIndexer(t *testing.T) {
	idx := MustRowMajor(Shape{})
	assert.Equal(t, 1, idx.LinearSize())

	offset, err := idx.Offset()
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	var all [][]int
	for index := range idx.Indices() {
		all = append(all, index)
	}
	require.Len(t, all, 1)
	assert.Empty(t, all[0])
}

func TestEmptyIndexer(t *testing.T) {
	idx := MustRowMajor(Shape{3, 0})
	assert.Equal(t, 0, idx.LinearSize())
	for range idx.Indices() {
		t.Fatal("empty shape must not yield indices")
	}
	_, err := idx.Offset(0, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}
