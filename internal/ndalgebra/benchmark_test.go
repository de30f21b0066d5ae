package ndalgebra

import (
	"fmt"
	"testing"

	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/parallel"
)

func benchOperands(b *testing.B, n int) (*nd.BufferND[float64], *nd.BufferND[float64]) {
	b.Helper()
	x, err := nd.Build(nd.Shape{n}, func(i []int) float64 { return float64(i[0]) })
	if err != nil {
		b.Fatal(err)
	}
	y, err := nd.Build(nd.Shape{n}, func(i []int) float64 { return float64(n - i[0]) })
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

func BenchmarkAdd(b *testing.B) {
	contexts := []struct {
		name string
		ops  FieldOps[float64]
	}{
		{"generic", NewFieldOps[float64](algebra.Float64Field{})},
		{"float64", Float64()},
		{"float64-parallel", NewFloat64FieldOps(parallel.DefaultConfig())},
	}

	for _, size := range []int{1_000, 1_000_000} {
		x, y := benchOperands(b, size)
		for _, c := range contexts {
			b.Run(fmt.Sprintf("%s/%d", c.name, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := c.ops.Add(x, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkPowerInt(b *testing.B) {
	x, _ := benchOperands(b, 10_000)
	ops := Float64()
	for i := 0; i < b.N; i++ {
		if _, err := ops.PowerInt(x, 7); err != nil {
			b.Fatal(err)
		}
	}
}
