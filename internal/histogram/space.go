package histogram

import (
	"math"
	"sync"

	"github.com/born-ml/kmath/internal/algebra"
)

// Space is the additive group of histograms sharing one bin layout.
type Space struct {
	factory BinFactory
	zero    func() *Histogram
}

var _ algebra.Group[*Histogram] = (*Space)(nil)

// NewSpace creates a histogram space with bins from factory.
func NewSpace(factory BinFactory) *Space {
	s := &Space{factory: factory}
	s.zero = sync.OnceValue(func() *Histogram { return s.Fill(func(*Builder) {}) })
	return s
}

// Uniform creates a space of bins with width binSize, one of them centered at start.
func Uniform(binSize, start float64) (*Space, error) {
	factory, err := UniformBins(binSize, start)
	if err != nil {
		return nil, err
	}
	return NewSpace(factory), nil
}

// Custom creates a space with bins between the given borders.
func Custom(borders ...float64) (*Space, error) {
	factory, err := CustomBins(borders...)
	if err != nil {
		return nil, err
	}
	return NewSpace(factory), nil
}

// Builder returns an empty builder for this space.
func (s *Space) Builder() *Builder {
	return newBuilder(s.factory)
}

// Fill runs fill on a fresh builder and returns the built histogram.
func (s *Space) Fill(fill func(b *Builder)) *Histogram {
	b := s.Builder()
	fill(b)
	return b.Build()
}

// Zero returns the empty histogram.
func (s *Space) Zero() *Histogram {
	return s.zero()
}

// Add sums values and standard deviations bin by bin over the union of both layouts.
func (s *Space) Add(a, b *Histogram) *Histogram {
	out := newHistogram()
	merge := func(bin Bin) bool {
		if out.bins.Has(Bin{Domain: bin.Domain}) {
			return true
		}
		av, as := a.valueAt(bin.Domain)
		bv, bs := b.valueAt(bin.Domain)
		out.bins.ReplaceOrInsert(Bin{Domain: bin.Domain, Value: av + bv, StandardDeviation: as + bs})
		return true
	}
	a.bins.Ascend(merge)
	b.bins.Ascend(merge)
	return out
}

// Scale multiplies every value by k. Deviations scale by |k|.
func (s *Space) Scale(a *Histogram, k float64) *Histogram {
	out := newHistogram()
	a.bins.Ascend(func(bin Bin) bool {
		out.bins.ReplaceOrInsert(Bin{
			Domain:            bin.Domain,
			Value:             bin.Value * k,
			StandardDeviation: math.Abs(bin.StandardDeviation * k),
		})
		return true
	})
	return out
}

// Neg returns a scaled by -1.
func (s *Space) Neg(a *Histogram) *Histogram {
	return s.Scale(a, -1)
}

// Sub returns a + (-b).
func (s *Space) Sub(a, b *Histogram) *Histogram {
	return s.Add(a, s.Neg(b))
}
