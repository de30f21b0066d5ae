// Package histogram implements univariate histograms with bins kept in an
// ordered tree, and the space of such histograms as an additive group.
package histogram

import (
	"github.com/born-ml/kmath/internal/nd"
	"github.com/google/btree"
)

// Bin is one frozen histogram bin.
type Bin struct {
	Domain            Domain
	Value             float64
	StandardDeviation float64
}

func binLess(a, b Bin) bool {
	return a.Domain.Center() < b.Domain.Center()
}

// Histogram is an immutable univariate histogram. It is safe for concurrent reads.
type Histogram struct {
	bins *btree.BTreeG[Bin]
}

func newHistogram() *Histogram {
	return &Histogram{bins: btree.NewG(degree, binLess)}
}

// Get returns the bin containing v.
func (h *Histogram) Get(v float64) (Bin, bool) {
	return findBin(h.bins, Bin{Domain: Domain{Lo: v, Hi: v}}, func(b Bin) bool {
		return b.Domain.Contains(v)
	})
}

// Len returns the number of bins.
func (h *Histogram) Len() int {
	return h.bins.Len()
}

// Bins returns all bins in ascending order.
func (h *Histogram) Bins() []Bin {
	out := make([]Bin, 0, h.bins.Len())
	h.bins.Ascend(func(b Bin) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Values returns the bin values in ascending bin order as a one-dimensional structure.
func (h *Histogram) Values() *nd.BufferND[float64] {
	bins := h.Bins()
	data := make([]float64, len(bins))
	for i, b := range bins {
		data[i] = b.Value
	}
	values, err := nd.Wrap(nd.Shape{len(data)}, data)
	if err != nil {
		panic(err)
	}
	return values
}

// valueAt returns the value and deviation of the bin centered like d, or of
// the bin containing the center of d. Missing bins count as zero.
func (h *Histogram) valueAt(d Domain) (float64, float64) {
	b, ok := h.bins.Get(Bin{Domain: d})
	if !ok {
		b, ok = h.Get(d.Center())
	}
	if !ok {
		return 0, 0
	}
	return b.Value, b.StandardDeviation
}
