// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gorgonia

import (
	"github.com/born-ml/kmath/internal/backend/gorgoniatensor"
	"github.com/born-ml/kmath/nd"
	"gorgonia.org/tensor"
)

// Structure is a structure view of a *tensor.Dense holding T values.
type Structure[T any] = gorgoniatensor.Structure[T]

// Wrap views d as a structure without copying.
// The tensor's dtype must be T, otherwise nd.ErrInvalidArgument is returned.
func Wrap[T any](d *tensor.Dense) (*Structure[T], error) {
	return gorgoniatensor.Wrap[T](d)
}

// FromStructure converts s into a *tensor.Dense, sharing storage when s is
// canonically buffer-backed. Empty structures are rejected.
func FromStructure[T any](s nd.StructureND[T]) (*tensor.Dense, error) {
	return gorgoniatensor.FromStructure(s)
}
