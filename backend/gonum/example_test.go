// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum_test

import (
	"fmt"

	"github.com/born-ml/kmath/backend/gonum"
	"github.com/born-ml/kmath/nd"
	"github.com/born-ml/kmath/ndalgebra"
	"gonum.org/v1/gonum/mat"
)

func ExampleMatMul() {
	m := gonum.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))

	elementwise, _ := ndalgebra.Float64().Mul(m, m)
	product, _ := gonum.MatMul(m, m)

	fmt.Println(nd.Values[float64](elementwise))
	fmt.Println(nd.Values[float64](product))

	// Output:
	// [1 4 9 16]
	// [7 10 15 22]
}
