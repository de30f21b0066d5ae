package algebra

import (
	"cmp"
	"iter"
)

// Sum adds up all values, starting from Zero().
func Sum[T any](g Group[T], values iter.Seq[T]) T {
	acc := g.Zero()
	for v := range values {
		acc = g.Add(acc, v)
	}
	return acc
}

// SumSlice adds up all values of a slice.
func SumSlice[T any](g Group[T], values []T) T {
	acc := g.Zero()
	for _, v := range values {
		acc = g.Add(acc, v)
	}
	return acc
}

// Average returns the arithmetic mean of values. The mean of no values is Zero().
func Average[T any](f Field[T], values []T) T {
	if len(values) == 0 {
		return f.Zero()
	}
	return f.Scale(SumSlice[T](f, values), 1/float64(len(values)))
}

// Abs returns x, or its negation when x is below Zero().
func Abs[T cmp.Ordered](r Ring[T], x T) T {
	if x < r.Zero() {
		return r.Neg(x)
	}
	return x
}
