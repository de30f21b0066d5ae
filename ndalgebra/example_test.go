// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndalgebra_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/kmath/algebra"
	"github.com/born-ml/kmath/nd"
	"github.com/born-ml/kmath/ndalgebra"
)

func ExampleFloat64() {
	ops := ndalgebra.Float64()
	ones := nd.MustBuild(nd.Shape{2, 2}, func([]int) float64 { return 1 })
	twos := nd.MustBuild(nd.Shape{2, 2}, func([]int) float64 { return 2 })

	sum, _ := ops.Zip(ones, twos, func(x, y float64) float64 { return x + y })
	fmt.Println(nd.Values[float64](sum))

	big := nd.MustBuild(nd.Shape{3, 3}, func([]int) float64 { return 0 })
	_, err := ops.Add(ones, big)
	fmt.Println(errors.Is(err, nd.ErrShapeMismatch))
	fmt.Println(err)

	// Output:
	// [3 3 3 3]
	// true
	// add: shape mismatch: [2, 2] on the left and [3, 3] on the right
}

func ExampleFloat64Field() {
	ctx, _ := ndalgebra.Float64Field(2)
	x := nd.MustFromSlice(nd.Shape{2}, []float64{-4, 9})

	sq, _ := ctx.Power(x, 2)
	fmt.Println(nd.Values[float64](sq))

	_, err := ctx.Power(x, 0.5)
	fmt.Println(errors.Is(err, nd.ErrInvalidArgument))

	y, _ := ctx.Add(x, ctx.One())
	fmt.Println(nd.Values[float64](y))

	// Output:
	// [16 81]
	// true
	// [-3 10]
}

func ExampleNewRingOps() {
	ops := ndalgebra.NewRingOps[int64](algebra.Int64Ring{})
	x := nd.MustFromSlice(nd.Shape{3}, []int64{1, 2, 3})

	cube, _ := ops.PowerInt(x, 3)
	fmt.Println(nd.Values[int64](cube))

	// Output:
	// [1 8 27]
}
