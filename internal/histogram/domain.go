package histogram

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/born-ml/kmath/internal/nd"
)

// Domain is the half-open interval [Lo, Hi) covered by one bin.
type Domain struct {
	Lo float64
	Hi float64
}

// Contains reports whether v lies in [Lo, Hi).
func (d Domain) Contains(v float64) bool {
	return v >= d.Lo && v < d.Hi
}

// Center returns the midpoint. Bins unbounded on one side are centered at that infinity.
func (d Domain) Center() float64 {
	switch {
	case math.IsInf(d.Lo, -1):
		return d.Lo
	case math.IsInf(d.Hi, 1):
		return d.Hi
	}
	return d.Lo + (d.Hi-d.Lo)/2
}

// Width returns Hi - Lo.
func (d Domain) Width() float64 {
	return d.Hi - d.Lo
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g)", d.Lo, d.Hi)
}

// BinFactory returns the domain of the bin that holds v.
// Domains returned for different values must either coincide or not overlap.
type BinFactory func(v float64) Domain

// UniformBins creates bins of width binSize centered on start + k*binSize.
func UniformBins(binSize, start float64) (BinFactory, error) {
	if !(binSize > 0) || math.IsInf(binSize, 0) {
		return nil, fmt.Errorf("%w: bin size must be a positive finite number, got %v", nd.ErrInvalidArgument, binSize)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return nil, fmt.Errorf("%w: start must be finite, got %v", nd.ErrInvalidArgument, start)
	}
	return func(v float64) Domain {
		center := start + binSize*math.Floor((v-start)/binSize+0.5)
		return Domain{Lo: center - binSize/2, Hi: center + binSize/2}
	}, nil
}

// CustomBins creates bins between consecutive borders. Values below the
// smallest border or at or above the largest fall into the unbounded outer bins.
func CustomBins(borders ...float64) (BinFactory, error) {
	if len(borders) == 0 {
		return nil, fmt.Errorf("%w: at least one border is required", nd.ErrInvalidArgument)
	}
	sorted := slices.Clone(borders)
	for _, b := range sorted {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, fmt.Errorf("%w: borders must be finite, got %v", nd.ErrInvalidArgument, b)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	return func(v float64) Domain {
		// First border strictly greater than v.
		i := sort.SearchFloat64s(sorted, math.Nextafter(v, math.Inf(1)))
		switch i {
		case 0:
			return Domain{Lo: math.Inf(-1), Hi: sorted[0]}
		case len(sorted):
			return Domain{Lo: sorted[len(sorted)-1], Hi: math.Inf(1)}
		}
		return Domain{Lo: sorted[i-1], Hi: sorted[i]}
	}, nil
}
