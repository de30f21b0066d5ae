package nd

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcStructure is a read-only structure computed on the fly, standing in for a foreign backend.
type funcStructure struct {
	shape Shape
	f     func(index []int) float64
	reads int
}

func (s *funcStructure) Shape() Shape { return s.shape }

func (s *funcStructure) Get(index ...int) (float64, error) {
	if _, err := MustRowMajor(s.shape).Offset(index...); err != nil {
		return 0, err
	}
	s.reads++
	return s.f(index), nil
}

func (s *funcStructure) Elements() iter.Seq2[[]int, float64] {
	return func(yield func([]int, float64) bool) {
		for index := range MustRowMajor(s.shape).Indices() {
			if !yield(index, s.f(index)) {
				return
			}
		}
	}
}

func TestBufferGetSet(t *testing.T) {
	buf := NewBuffer(4, func(i int) int { return i * 10 })
	assert.Equal(t, 4, buf.Len())

	v, err := buf.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, buf.Set(3, 99))
	assert.Equal(t, []int{0, 10, 20, 99}, buf.Array())

	_, err = buf.Get(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, buf.Set(-1, 0), ErrIndexOutOfRange)
}

func TestWrapBufferSharesMemory(t *testing.T) {
	data := []float64{1, 2, 3}
	buf := WrapBuffer(data)
	require.NoError(t, buf.Set(0, 42))
	assert.Equal(t, 42.0, data[0])

	data[2] = 7
	v, err := buf.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	cp := buf.Copy()
	require.NoError(t, cp.Set(1, -1))
	assert.Equal(t, 2.0, data[1])
}

func TestNewBufferNDSizeMismatch(t *testing.T) {
	_, err := NewBufferND[float64](MustRowMajor(Shape{2, 3}), BufferOf(1.0, 2.0))
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromSlice(Shape{2, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestBufferNDGetSet(t *testing.T) {
	b, err := FromSlice(Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	v, err := b.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	require.NoError(t, b.Set(10, 0, 1))
	v, err = b.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = b.Get(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(1, 0, 0, 0), ErrIndexOutOfRange)
}

func TestBufferNDViewSharing(t *testing.T) {
	buf := BufferOf(1, 2, 3, 4)
	a, err := NewBufferND[int](MustRowMajor(Shape{2, 2}), buf)
	require.NoError(t, err)
	b, err := NewBufferND[int](MustRowMajor(Shape{4}), buf)
	require.NoError(t, err)

	require.NoError(t, a.Set(40, 1, 1))
	v, err := b.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 40, v, "mutation through one view is visible through the other")
}

func TestBufferNDElementsCanonicalOrder(t *testing.T) {
	// Column-major storage of [[1, 2, 3], [4, 5, 6]].
	col, err := ColumnMajor(Shape{2, 3})
	require.NoError(t, err)
	b, err := NewBufferND[int](col, BufferOf(1, 4, 2, 5, 3, 6))
	require.NoError(t, err)

	v, err := b.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, Values[int](b))
}

func TestBuild(t *testing.T) {
	b, err := Build(Shape{2, 2}, func(index []int) int { return index[0]*10 + index[1] })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10, 11}, Values[int](b))

	_, err = Build(Shape{-2}, func([]int) int { return 0 })
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestContentEquals(t *testing.T) {
	a, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	b, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	c, _ := FromSlice(Shape{4}, []int{1, 2, 3, 4})
	d, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 5})

	assert.True(t, ContentEquals[int](a, b))
	assert.NotSame(t, a, b)
	assert.False(t, ContentEquals[int](a, c))
	assert.False(t, ContentEquals[int](a, d))
}

// shortStructure fails to read any element at or past offset readable.
type shortStructure struct {
	*BufferND[int]
	readable int
}

func (s *shortStructure) Get(index ...int) (int, error) {
	off, err := MustRowMajor(s.Shape()).Offset(index...)
	if err != nil {
		return 0, err
	}
	if off >= s.readable {
		return 0, ErrIndexOutOfRange
	}
	return s.BufferND.Get(index...)
}

func (s *shortStructure) Elements() iter.Seq2[[]int, int] {
	return func(yield func([]int, int) bool) {
		for index := range MustRowMajor(s.Shape()).Indices() {
			v, err := s.Get(index...)
			if err != nil || !yield(index, v) {
				return
			}
		}
	}
}

func TestContentEqualsTruncatedStructure(t *testing.T) {
	full, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	inner, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	short := &shortStructure{BufferND: inner, readable: 2}

	assert.Equal(t, []int{1, 2}, Values[int](short))
	assert.False(t, ContentEquals[int](short, full), "a truncated enumeration is not a match")
	assert.False(t, ContentEquals[int](full, short))

	short.readable = 4
	assert.True(t, ContentEquals[int](short, full))
}

func TestBufferNDString(t *testing.T) {
	b, _ := FromSlice(Shape{2}, []int{7, 8})
	assert.Equal(t, "BufferND[2](7, 8)", b.String())
}
