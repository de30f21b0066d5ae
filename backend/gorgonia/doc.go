// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gorgonia connects gorgonia dense tensors to the n-dimensional API.
//
// # Overview
//
// Structure[T] views a *tensor.Dense of any rank as a mutable structure.
// Tensors that are row-major, contiguous and not views are read by the
// algebra contexts without copying. FromStructure goes the other way and
// shares storage with canonical inputs.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kmath/backend/gorgonia"
//	    "github.com/born-ml/kmath/ndalgebra"
//	    "gorgonia.org/tensor"
//	)
//
//	func main() {
//	    d := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]float64{1, 4, 9, 16}))
//	    s, _ := gorgonia.Wrap[float64](d)
//	    r, _ := ndalgebra.Float64().Sqrt(s) // [1, 2, 3, 4]
//	}
package gorgonia
