// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensors

import (
	"github.com/born-ml/kmath/internal/tensors"
	"github.com/born-ml/kmath/nd"
	"github.com/born-ml/kmath/ndalgebra"
)

// Float64Algebra is the float64 tensor algebra.
//
// Example:
//
//	t := tensors.Float64()
//	x, _ := t.RandomNormal(nd.Shape{1000}, 42)
//	std, _ := t.Std(x) // close to 1
type Float64Algebra = tensors.Float64Algebra

// Compile-time check that the tensor algebra is a full float64 context.
var _ ndalgebra.ExtendedFieldOps[float64] = Float64Algebra{}

// Float64 returns the sequential tensor algebra.
func Float64() Float64Algebra {
	return tensors.Float64()
}

// NewFloat64Algebra returns a tensor algebra whose loops follow cfg.
func NewFloat64Algebra(cfg ndalgebra.Config) Float64Algebra {
	return tensors.NewFloat64Algebra(cfg)
}

// BroadcastShapes returns the NumPy-style broadcast of a and b.
// Incompatible shapes fail with nd.ErrShapeMismatch.
func BroadcastShapes(a, b nd.Shape) (nd.Shape, error) {
	return tensors.BroadcastShapes(a, b)
}
