// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nd_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/kmath/nd"
)

func ExampleFromSlice() {
	x := nd.MustFromSlice(nd.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	v, _ := x.Get(1, 2)
	fmt.Println(x.Shape(), x.Shape().LinearSize(), v)
	fmt.Println(x)

	// Output:
	// [2, 3] 6 6
	// BufferND[2, 3](1, 2, 3, 4, 5, 6)
}

func ExampleRowMajor() {
	idx, _ := nd.RowMajor(nd.Shape{2, 3})
	offset, _ := idx.Offset(1, 2)
	index, _ := idx.Index(4)
	fmt.Println(offset, index)

	// Output:
	// 5 [1 1]
}

func ExampleToBufferND() {
	// Column-major data is copied into canonical order.
	idx, _ := nd.ColumnMajor(nd.Shape{2, 2})
	col, _ := nd.NewBufferND[int](idx, nd.BufferOf(1, 3, 2, 4))
	canonical, _ := nd.ToBufferND[int](col)
	fmt.Println(nd.Values[int](canonical))

	// Canonical structures are returned as is.
	same, _ := nd.ToBufferND[int](canonical)
	fmt.Println(same == canonical)

	// Output:
	// [1 2 3 4]
	// true
}

func ExampleCheckSameShape() {
	err := nd.CheckSameShape("add", nd.Shape{2, 2}, nd.Shape{3, 3})
	fmt.Println(errors.Is(err, nd.ErrShapeMismatch))

	var mismatch *nd.ShapeMismatchError
	if errors.As(err, &mismatch) {
		fmt.Println(mismatch.Left, mismatch.Right)
	}

	// Output:
	// true
	// [2, 2] [3, 3]
}
