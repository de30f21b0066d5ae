// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package histogram provides the public API for one-dimensional histograms.
//
// A Space fixes the bin layout; histograms built in the same space can be
// added, subtracted and scaled. Bins are half-open intervals [Lo, Hi) and
// are created on first use, so sparse data stays small.
//
// Example:
//
//	space, _ := histogram.Uniform(1, 0)
//	h := space.Fill(func(b *histogram.Builder) {
//	    b.Put(0.2)
//	    b.Put(1.7)
//	})
//	bin, _ := h.Get(0.4) // Domain [-0.5, 0.5), Value 1
package histogram

import (
	"github.com/born-ml/kmath/internal/histogram"
)

// Domain is the half-open interval [Lo, Hi) covered by one bin.
type Domain = histogram.Domain

// BinFactory maps a value to the domain of the bin holding it.
type BinFactory = histogram.BinFactory

// Bin is one filled bin of a histogram.
type Bin = histogram.Bin

// Histogram is an immutable set of bins.
type Histogram = histogram.Histogram

// Builder accumulates values into bins. It is safe for concurrent use.
type Builder = histogram.Builder

// Space is the algebra of histograms sharing one bin layout.
type Space = histogram.Space

// UniformBins returns a factory for bins of width binSize centered on
// start + k*binSize.
func UniformBins(binSize, start float64) (BinFactory, error) {
	return histogram.UniformBins(binSize, start)
}

// CustomBins returns a factory for bins between the given borders. Values
// below the first or above the last border fall into unbounded outer bins.
func CustomBins(borders ...float64) (BinFactory, error) {
	return histogram.CustomBins(borders...)
}

// NewSpace returns a space using factory to place values.
func NewSpace(factory BinFactory) *Space {
	return histogram.NewSpace(factory)
}

// Uniform returns a space of uniform bins.
func Uniform(binSize, start float64) (*Space, error) {
	return histogram.Uniform(binSize, start)
}

// Custom returns a space of bins between the given borders.
func Custom(borders ...float64) (*Space, error) {
	return histogram.Custom(borders...)
}
