package histogram

import (
	"fmt"
	"math"
	"sync"

	"github.com/born-ml/kmath/internal/nd"
	"github.com/google/btree"
)

// degree of the b-trees holding bins.
const degree = 8

type binCounter struct {
	domain Domain
	count  counter
}

func binCounterLess(a, b *binCounter) bool {
	return a.domain.Center() < b.domain.Center()
}

// Builder accumulates weighted values into bins. It is safe for concurrent use.
//
// Bins are created on first use from the space's BinFactory. Lookups share a
// read lock; creation takes the write lock and re-checks, so two goroutines
// filling the same new interval end up counting into one bin.
type Builder struct {
	factory BinFactory

	mu   sync.RWMutex
	bins *btree.BTreeG[*binCounter]
}

func newBuilder(factory BinFactory) *Builder {
	return &Builder{
		factory: factory,
		bins:    btree.NewG(degree, binCounterLess),
	}
}

// Put counts one occurrence of at.
func (b *Builder) Put(at float64) {
	b.PutValue(at, 1)
}

// PutValue adds weight to the bin containing at.
// NaN and infinite positions belong to no bin and are ignored.
func (b *Builder) PutValue(at, weight float64) {
	if math.IsNaN(at) || math.IsInf(at, 0) {
		return
	}
	bin := b.get(at)
	if bin == nil {
		bin = b.create(at)
	}
	bin.count.add(weight)
}

// PutPoint adds weight at a one-dimensional point.
func (b *Builder) PutPoint(point nd.Buffer[float64], weight float64) error {
	if point.Len() != 1 {
		return fmt.Errorf("%w: univariate histogram needs a point with one coordinate, got %d",
			nd.ErrInvalidArgument, point.Len())
	}
	at, err := point.Get(0)
	if err != nil {
		return err
	}
	b.PutValue(at, weight)
	return nil
}

func (b *Builder) get(v float64) *binCounter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bin, _ := findBin(b.bins, &binCounter{domain: Domain{Lo: v, Hi: v}}, func(c *binCounter) bool {
		return c.domain.Contains(v)
	})
	return bin
}

func (b *Builder) create(v float64) *binCounter {
	domain := b.factory(v)
	pivot := &binCounter{domain: domain}

	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.bins.Get(pivot); ok {
		return existing
	}
	b.bins.ReplaceOrInsert(pivot)
	return pivot
}

// Build freezes the current counts into a Histogram. The standard deviation of
// each bin is the square root of its count.
func (b *Builder) Build() *Histogram {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h := newHistogram()
	b.bins.Ascend(func(c *binCounter) bool {
		count := c.count.value()
		h.bins.ReplaceOrInsert(Bin{Domain: c.domain, Value: count, StandardDeviation: math.Sqrt(count)})
		return true
	})
	return h
}

// findBin returns the ceiling entry of pivot if it matches, else the floor entry.
func findBin[T any](tree *btree.BTreeG[T], pivot T, contains func(T) bool) (T, bool) {
	var found T
	ok := false
	tree.AscendGreaterOrEqual(pivot, func(item T) bool {
		if contains(item) {
			found, ok = item, true
		}
		return false
	})
	if ok {
		return found, true
	}
	tree.DescendLessOrEqual(pivot, func(item T) bool {
		if contains(item) {
			found, ok = item, true
		}
		return false
	})
	return found, ok
}
