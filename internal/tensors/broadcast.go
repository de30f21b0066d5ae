package tensors

import (
	"fmt"

	"github.com/born-ml/kmath/internal/nd"
)

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b nd.Shape) (nd.Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(nd.Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim := dimFromRight(a, i)
		bDim := dimFromRight(b, i)

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, &nd.ShapeMismatchError{Op: "broadcast", Left: a.Clone(), Right: b.Clone()}
		}
	}
	return result, nil
}

func dimFromRight(s nd.Shape, i int) int {
	if idx := len(s) - 1 - i; idx >= 0 {
		return s[idx]
	}
	return 1
}

// BroadcastTo repeats x along its size-1 and missing leading dimensions to
// fill shape. The result is a fresh tensor.
func (Float64Algebra) BroadcastTo(x nd.StructureND[float64], shape nd.Shape) (*nd.BufferND[float64], error) {
	src := x.Shape()
	target, err := BroadcastShapes(src, shape)
	if err != nil {
		return nil, err
	}
	if !target.Equal(shape) {
		return nil, fmt.Errorf("%w: %v could not be broadcast to %v", nd.ErrShapeMismatch, src, shape)
	}
	b, err := nd.ToBufferND(x)
	if err != nil {
		return nil, err
	}

	lead := len(shape) - len(src)
	srcIndex := make([]int, len(src))
	return nd.Build(shape, func(index []int) float64 {
		for d := range srcIndex {
			if src[d] == 1 {
				srcIndex[d] = 0
			} else {
				srcIndex[d] = index[lead+d]
			}
		}
		v, err := b.Get(srcIndex...)
		if err != nil {
			// Every mapped index lies inside src.
			panic(err)
		}
		return v
	})
}
