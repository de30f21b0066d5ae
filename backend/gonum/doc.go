// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum connects gonum dense matrices to the n-dimensional API.
//
// # Overview
//
// This package provides:
//   - Matrix: a mutable rank-2 structure over *mat.Dense
//   - FromStructure: any rank-2 float64 structure as a *mat.Dense
//   - MatMul: the matrix product of two rank-2 structures
//
// A Matrix whose rows are contiguous (Stride == Cols) is read by the algebra
// contexts without copying; sub-matrix views are copied first.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kmath/backend/gonum"
//	    "github.com/born-ml/kmath/ndalgebra"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    m := gonum.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
//	    sq, _ := ndalgebra.Float64().Mul(m, m) // element-wise
//	    p, _ := gonum.MatMul(m, m)             // matrix product
//	}
package gonum
