package tensors

import (
	"fmt"

	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SumDim sums elements along dim.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x, _ := tensors.Float64().Ones(nd.Shape{2, 3, 4})
//	y, _ := tensors.Float64().SumDim(x, -1, true)  // shape: [2, 3, 1]
//	z, _ := tensors.Float64().SumDim(x, -1, false) // shape: [2, 3]
func (a Float64Algebra) SumDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceDim("sum", x, dim, keepDim, floats.Sum)
}

// MeanDim computes the mean along dim.
func (a Float64Algebra) MeanDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceDim("mean", x, dim, keepDim, func(lane []float64) float64 { return stat.Mean(lane, nil) })
}

// VarianceDim computes the unbiased variance along dim.
func (a Float64Algebra) VarianceDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceDim("variance", x, dim, keepDim, func(lane []float64) float64 { return stat.Variance(lane, nil) })
}

// StdDim computes the unbiased standard deviation along dim.
func (a Float64Algebra) StdDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceDim("std", x, dim, keepDim, func(lane []float64) float64 { return stat.StdDev(lane, nil) })
}

// MinDim returns the minimum along dim. The dimension must not be empty.
func (a Float64Algebra) MinDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceNonEmpty("min", x, dim, keepDim, floats.Min)
}

// MaxDim returns the maximum along dim. The dimension must not be empty.
func (a Float64Algebra) MaxDim(x nd.StructureND[float64], dim int, keepDim bool) (*nd.BufferND[float64], error) {
	return a.reduceNonEmpty("max", x, dim, keepDim, floats.Max)
}

func (a Float64Algebra) reduceNonEmpty(op string, x nd.StructureND[float64], dim int, keepDim bool, f func([]float64) float64) (*nd.BufferND[float64], error) {
	d, err := normalizeDim(op, x.Shape(), dim)
	if err != nil {
		return nil, err
	}
	if x.Shape()[d] == 0 {
		return nil, fmt.Errorf("%w: %s: dimension %d is empty", nd.ErrInvalidArgument, op, dim)
	}
	return a.reduceDim(op, x, dim, keepDim, f)
}

func normalizeDim(op string, shape nd.Shape, dim int) (int, error) {
	ndim := shape.Rank()
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return 0, fmt.Errorf("%w: %s: dimension %d out of range for %dD tensor", nd.ErrInvalidArgument, op, dim, ndim)
	}
	return dim, nil
}

// reduceDim applies f to every lane of x along dim.
// Outer blocks are independent and may run on separate goroutines.
func (a Float64Algebra) reduceDim(op string, x nd.StructureND[float64], dim int, keepDim bool, f func(lane []float64) float64) (*nd.BufferND[float64], error) {
	shape := x.Shape()
	d, err := normalizeDim(op, shape, dim)
	if err != nil {
		return nil, err
	}
	data, err := nd.ArrayOf(x)
	if err != nil {
		return nil, err
	}

	outer := shape[:d].LinearSize()
	n := shape[d]
	inner := shape[d+1:].LinearSize()

	var outShape nd.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[d] = 1
	} else {
		outShape = make(nd.Shape, 0, shape.Rank()-1)
		outShape = append(outShape, shape[:d]...)
		outShape = append(outShape, shape[d+1:]...)
	}

	out := make([]float64, outer*inner)
	parallel.For(outer, func(o int) {
		lane := make([]float64, n)
		base := o * n * inner
		for in := 0; in < inner; in++ {
			for k := range lane {
				lane[k] = data[base+k*inner+in]
			}
			out[o*inner+in] = f(lane)
		}
	}, a.Config())
	return nd.Wrap(outShape, out)
}
