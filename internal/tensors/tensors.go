// Package tensors provides float64 tensor creation, statistics and explicit
// broadcasting on top of the n-dimensional algebra contexts.
package tensors

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/ndalgebra"
	"github.com/born-ml/kmath/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Float64Algebra is the float64 extended field over structures plus
// whole-tensor and per-dimension statistics.
type Float64Algebra struct {
	ndalgebra.Float64FieldOps
}

// NewFloat64Algebra creates a tensor algebra whose element-wise loops follow cfg.
func NewFloat64Algebra(cfg parallel.Config) Float64Algebra {
	return Float64Algebra{Float64FieldOps: ndalgebra.NewFloat64FieldOps(cfg)}
}

// Float64 returns the sequential tensor algebra.
func Float64() Float64Algebra {
	return Float64Algebra{Float64FieldOps: ndalgebra.Float64()}
}

// FromSlice creates a tensor holding a copy of data.
func (Float64Algebra) FromSlice(shape nd.Shape, data []float64) (*nd.BufferND[float64], error) {
	return nd.FromSlice(shape, data)
}

// Full creates a tensor with every element equal to v.
func (Float64Algebra) Full(shape nd.Shape, v float64) (*nd.BufferND[float64], error) {
	return nd.Build(shape, func([]int) float64 { return v })
}

// Zeros creates a tensor filled with 0.
func (a Float64Algebra) Zeros(shape nd.Shape) (*nd.BufferND[float64], error) {
	return a.Full(shape, 0)
}

// Ones creates a tensor filled with 1.
func (a Float64Algebra) Ones(shape nd.Shape) (*nd.BufferND[float64], error) {
	return a.Full(shape, 1)
}

// RandomNormal creates a tensor of standard normal samples.
// Equal seeds produce equal tensors.
func (Float64Algebra) RandomNormal(shape nd.Shape, seed uint64) (*nd.BufferND[float64], error) {
	indexer, err := nd.RowMajor(shape)
	if err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	data := make([]float64, indexer.LinearSize())
	for i := range data {
		data[i] = dist.Rand()
	}
	return nd.NewBufferND[float64](indexer, nd.WrapBuffer(data))
}

// Floor rounds every element down.
func (a Float64Algebra) Floor(x nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return a.Map(x, math.Floor)
}

// Ceil rounds every element up.
func (a Float64Algebra) Ceil(x nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return a.Map(x, math.Ceil)
}

// Sum adds up all elements.
func (Float64Algebra) Sum(x nd.StructureND[float64]) (float64, error) {
	data, err := nd.ArrayOf(x)
	if err != nil {
		return 0, err
	}
	return floats.Sum(data), nil
}

// Mean returns the arithmetic mean of all elements.
func (Float64Algebra) Mean(x nd.StructureND[float64]) (float64, error) {
	data, err := nd.ArrayOf(x)
	if err != nil {
		return 0, err
	}
	return stat.Mean(data, nil), nil
}

// Variance returns the unbiased sample variance of all elements.
func (Float64Algebra) Variance(x nd.StructureND[float64]) (float64, error) {
	data, err := nd.ArrayOf(x)
	if err != nil {
		return 0, err
	}
	return stat.Variance(data, nil), nil
}

// Std returns the unbiased sample standard deviation of all elements.
func (Float64Algebra) Std(x nd.StructureND[float64]) (float64, error) {
	data, err := nd.ArrayOf(x)
	if err != nil {
		return 0, err
	}
	return stat.StdDev(data, nil), nil
}
