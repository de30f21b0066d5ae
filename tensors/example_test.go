// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensors_test

import (
	"fmt"

	"github.com/born-ml/kmath/nd"
	"github.com/born-ml/kmath/tensors"
)

func ExampleFloat64Algebra_SumDim() {
	t := tensors.Float64()
	x, _ := t.FromSlice(nd.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	rows, _ := t.SumDim(x, 1, false)
	cols, _ := t.SumDim(x, 0, true)
	mean, _ := t.Mean(x)

	fmt.Println(rows.Shape(), nd.Values[float64](rows))
	fmt.Println(cols.Shape(), nd.Values[float64](cols))
	fmt.Println(mean)

	// Output:
	// [2] [6 15]
	// [1, 3] [5 7 9]
	// 3.5
}

func ExampleBroadcastShapes() {
	s, _ := tensors.BroadcastShapes(nd.Shape{3, 1}, nd.Shape{1, 5})
	fmt.Println(s)

	_, err := tensors.BroadcastShapes(nd.Shape{3, 4}, nd.Shape{3, 5})
	fmt.Println(err != nil)

	// Output:
	// [3, 5]
	// true
}
