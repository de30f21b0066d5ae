// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensors provides float64 tensor creation, statistics and
// broadcasting on top of the n-dimensional algebra contexts.
//
// # Overview
//
// A tensor is any nd.StructureND[float64]. Float64Algebra embeds the
// specialized float64 context from package ndalgebra, so every element-wise
// operation (Add, Mul, Exp, Power, ...) is available next to:
//   - creation: FromSlice, Full, Zeros, Ones, RandomNormal
//   - whole-tensor statistics: Sum, Mean, Variance, Std
//   - per-dimension reductions: SumDim, MeanDim, VarianceDim, StdDim, MinDim, MaxDim
//   - rounding: Floor, Ceil
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kmath/nd"
//	    "github.com/born-ml/kmath/tensors"
//	)
//
//	func main() {
//	    t := tensors.Float64()
//
//	    x, _ := t.FromSlice(nd.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	    rows, _ := t.SumDim(x, 1, false) // [6, 15]
//	    mean, _ := t.Mean(x)             // 3.5
//	}
//
// # Statistics
//
// Variance and Std are unbiased (divide by n-1), as computed by
// gonum.org/v1/gonum/stat. Reductions accept negative dimensions counted
// from the end; keepDim retains the reduced dimension with size 1.
//
// # Broadcasting
//
// Shapes are never broadcast implicitly. BroadcastShapes computes the
// NumPy-style result shape and BroadcastTo materializes a tensor at that
// shape, after which the equal-shape operations apply:
//
//	row, _ := t.FromSlice(nd.Shape{1, 3}, []float64{1, 2, 3})
//	grid, _ := t.BroadcastTo(row, nd.Shape{2, 3})
//	sum, _ := t.Add(grid, x)
//
// # Parallelism
//
// Float64() runs every loop on the calling goroutine. NewFloat64Algebra with
// ndalgebra.DefaultConfig() splits large loops across goroutines; results are
// identical because every output element depends only on the inputs at the
// same index.
package tensors
