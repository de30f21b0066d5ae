// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum

import (
	"github.com/born-ml/kmath/internal/backend/gonummat"
	"github.com/born-ml/kmath/nd"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a rank-2 structure view of a *mat.Dense.
type Matrix = gonummat.Matrix

// Compile-time check that Matrix is a mutable structure.
var _ nd.MutableStructureND[float64] = (*Matrix)(nil)

// NewMatrix wraps d without copying.
func NewMatrix(d *mat.Dense) *Matrix {
	return gonummat.NewMatrix(d)
}

// FromStructure returns s as a *mat.Dense, sharing storage when s is
// canonically buffer-backed. s must have rank 2 and no empty dimension.
func FromStructure(s nd.StructureND[float64]) (*mat.Dense, error) {
	return gonummat.FromStructure(s)
}

// MatMul returns the matrix product a·b. The inner dimensions must agree.
func MatMul(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return gonummat.MatMul(a, b)
}
