// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package histogram_test

import (
	"fmt"

	"github.com/born-ml/kmath/histogram"
)

func ExampleUniform() {
	space, _ := histogram.Uniform(1, 0)
	h := space.Fill(func(b *histogram.Builder) {
		b.Put(0.2)
		b.Put(-0.1)
		b.PutValue(1.7, 3)
	})

	for _, bin := range h.Bins() {
		fmt.Println(bin.Domain, bin.Value)
	}

	// Output:
	// [-0.5, 0.5) 2
	// [1.5, 2.5) 3
}

func ExampleCustom() {
	space, _ := histogram.Custom(0, 10, 20)
	h := space.Fill(func(b *histogram.Builder) {
		b.Put(-5)
		b.Put(15)
		b.Put(25)
	})

	doubled := space.Add(h, h)
	for _, bin := range doubled.Bins() {
		fmt.Println(bin.Domain, bin.Value)
	}

	// Output:
	// [-Inf, 0) 2
	// [10, 20) 2
	// [20, +Inf) 2
}
