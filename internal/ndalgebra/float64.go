package ndalgebra

import (
	"fmt"
	"math"

	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/parallel"
	"gonum.org/v1/gonum/floats"
)

// Float64FieldOps is the float64 extended field specialized with direct slice
// loops. Every operation produces the same elements as the generic context.
//
// With an enabled parallel.Config one flat loop is split into disjoint chunks;
// the call still returns only after every chunk is written.
type Float64FieldOps struct {
	BufferedExtendedFieldOps[float64, algebra.Float64Field]
	cfg parallel.Config
}

// NewFloat64FieldOps creates a float64 context using cfg for bulk loops.
func NewFloat64FieldOps(cfg parallel.Config) Float64FieldOps {
	return Float64FieldOps{
		BufferedExtendedFieldOps: NewExtendedFieldOps[float64](algebra.Float64Field{}),
		cfg:                      cfg,
	}
}

// Config returns the parallel configuration of the context.
func (o Float64FieldOps) Config() parallel.Config {
	return o.cfg
}

// unary writes kernel(dst, src) chunk by chunk into a fresh buffer.
func (o Float64FieldOps) unary(a nd.StructureND[float64], kernel func(dst, src []float64)) (*nd.BufferND[float64], error) {
	indexer, data, err := flat(a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(data))
	parallel.ForRange(len(data), func(lo, hi int) {
		kernel(out[lo:hi], data[lo:hi])
	}, o.cfg)
	return result(indexer, out)
}

func (o Float64FieldOps) binary(op string, a, b nd.StructureND[float64], kernel func(dst, l, r []float64)) (*nd.BufferND[float64], error) {
	indexer, left, right, err := flat2(op, a, b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(left))
	parallel.ForRange(len(left), func(lo, hi int) {
		kernel(out[lo:hi], left[lo:hi], right[lo:hi])
	}, o.cfg)
	return result(indexer, out)
}

func (o Float64FieldOps) apply(a nd.StructureND[float64], f func(float64) float64) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		for i, v := range src {
			dst[i] = f(v)
		}
	})
}

// Map applies f to every element.
func (o Float64FieldOps) Map(a nd.StructureND[float64], f func(v float64) float64) (*nd.BufferND[float64], error) {
	return o.apply(a, f)
}

// Zip combines the elements of a and b pairwise. Shapes must be equal.
func (o Float64FieldOps) Zip(a, b nd.StructureND[float64], f func(l, r float64) float64) (*nd.BufferND[float64], error) {
	return o.binary("zip", a, b, func(dst, l, r []float64) {
		for i := range dst {
			dst[i] = f(l[i], r[i])
		}
	})
}

func (o Float64FieldOps) Add(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.binary("add", a, b, func(dst, l, r []float64) { floats.AddTo(dst, l, r) })
}

func (o Float64FieldOps) Sub(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.binary("sub", a, b, func(dst, l, r []float64) { floats.SubTo(dst, l, r) })
}

func (o Float64FieldOps) Mul(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.binary("mul", a, b, func(dst, l, r []float64) { floats.MulTo(dst, l, r) })
}

func (o Float64FieldOps) Div(a, b nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.binary("div", a, b, func(dst, l, r []float64) { floats.DivTo(dst, l, r) })
}

func (o Float64FieldOps) Neg(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		for i, v := range src {
			dst[i] = -v
		}
	})
}

func (o Float64FieldOps) AddScalar(a nd.StructureND[float64], v float64) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		copy(dst, src)
		floats.AddConst(v, dst)
	})
}

func (o Float64FieldOps) SubScalar(a nd.StructureND[float64], v float64) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		for i, x := range src {
			dst[i] = x - v
		}
	})
}

func (o Float64FieldOps) MulScalar(a nd.StructureND[float64], v float64) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) { floats.ScaleTo(dst, v, src) })
}

func (o Float64FieldOps) Scale(a nd.StructureND[float64], k float64) (*nd.BufferND[float64], error) {
	return o.MulScalar(a, k)
}

func (o Float64FieldOps) DivScalar(a nd.StructureND[float64], v float64) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		for i, x := range src {
			dst[i] = x / v
		}
	})
}

func (o Float64FieldOps) ScalarDiv(v float64, a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.unary(a, func(dst, src []float64) {
		for i, x := range src {
			dst[i] = v / x
		}
	})
}

// PowerInt raises every element to the integer power n; negative n inverts.
func (o Float64FieldOps) PowerInt(a nd.StructureND[float64], n int64) (*nd.BufferND[float64], error) {
	f := algebra.Float64Field{}
	return o.apply(a, func(x float64) float64 { return algebra.PowerInt[float64](f, x, n) })
}

// Power raises every element to the real power p.
// A fractional p with any negative element fails before anything is computed.
func (o Float64FieldOps) Power(a nd.StructureND[float64], p float64) (*nd.BufferND[float64], error) {
	indexer, data, err := flat(a)
	if err != nil {
		return nil, err
	}
	if !algebra.IsInteger(p) {
		for i, v := range data {
			if v < 0 {
				return nil, fmt.Errorf("power: element %d: %w: negative argument %v could not be raised to the fractional power %v",
					i, nd.ErrInvalidArgument, v, p)
			}
		}
	}
	out := make([]float64, len(data))
	parallel.ForRange(len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = math.Pow(data[i], p)
		}
	}, o.cfg)
	return result(indexer, out)
}

func (o Float64FieldOps) Exp(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Exp)
}

func (o Float64FieldOps) Ln(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Log)
}

func (o Float64FieldOps) Sqrt(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Sqrt)
}

func (o Float64FieldOps) Sin(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Sin)
}

func (o Float64FieldOps) Cos(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Cos)
}

func (o Float64FieldOps) Tan(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Tan)
}

func (o Float64FieldOps) Asin(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Asin)
}

func (o Float64FieldOps) Acos(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Acos)
}

func (o Float64FieldOps) Atan(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Atan)
}

func (o Float64FieldOps) Sinh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Sinh)
}

func (o Float64FieldOps) Cosh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Cosh)
}

func (o Float64FieldOps) Tanh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Tanh)
}

func (o Float64FieldOps) Asinh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Asinh)
}

func (o Float64FieldOps) Acosh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Acosh)
}

func (o Float64FieldOps) Atanh(a nd.StructureND[float64]) (*nd.BufferND[float64], error) {
	return o.apply(a, math.Atanh)
}
