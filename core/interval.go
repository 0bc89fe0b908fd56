// SPDX-License-Identifier: MIT
//
// File: interval.go
// Role: immutable axis-aligned integer bounds shared by containers and views.

package core

import (
	"fmt"
	"strings"
)

// Interval is an axis-aligned integer coordinate box with inclusive bounds:
// dimension d covers min[d]..max[d]. An empty extent along a dimension is
// expressed by the max = min-1 convention. Intervals are immutable value
// objects: construct once, share freely.
type Interval struct {
	min []int
	max []int
}

// NewInterval builds an Interval from per-dimension inclusive bounds.
// Both slices are copied, so the caller keeps ownership of its arguments.
// Returns ErrDimensionMismatch if len(min) != len(max), ErrBadInterval if
// any dimension violates min[d] <= max[d]+1.
// Complexity: O(n) time and memory, n = len(min).
func NewInterval(min, max []int) (Interval, error) {
	if len(min) != len(max) {
		return Interval{}, fmt.Errorf("%w: len(min)=%d, len(max)=%d", ErrDimensionMismatch, len(min), len(max))
	}
	for d := range min {
		if min[d] > max[d]+1 {
			return Interval{}, fmt.Errorf("%w: dimension %d has min=%d > max+1=%d", ErrBadInterval, d, min[d], max[d]+1)
		}
	}
	iv := Interval{min: make([]int, len(min)), max: make([]int, len(max))}
	copy(iv.min, min)
	copy(iv.max, max)
	return iv, nil
}

// NewZeroMin builds an Interval with min fixed at the origin and the given
// extents: dimension d covers 0..dims[d]-1.
// Returns ErrBadInterval if any extent is negative.
// Complexity: O(n).
func NewZeroMin(dims ...int) (Interval, error) {
	iv := Interval{min: make([]int, len(dims)), max: make([]int, len(dims))}
	for d, size := range dims {
		if size < 0 {
			return Interval{}, fmt.Errorf("%w: dimension %d has negative extent %d", ErrBadInterval, d, size)
		}
		iv.max[d] = size - 1
	}
	return iv, nil
}

// NumDimensions returns the dimensionality of the interval.
func (iv Interval) NumDimensions() int { return len(iv.min) }

// Min returns the inclusive lower bound along dimension d.
// Panics with ErrDimensionIndex if d is out of range.
func (iv Interval) Min(d int) int {
	iv.checkDim(d)
	return iv.min[d]
}

// Max returns the inclusive upper bound along dimension d.
// Panics with ErrDimensionIndex if d is out of range.
func (iv Interval) Max(d int) int {
	iv.checkDim(d)
	return iv.max[d]
}

// MinCoords returns a fresh copy of the lower-bound corner.
func (iv Interval) MinCoords() []int {
	out := make([]int, len(iv.min))
	copy(out, iv.min)
	return out
}

// MaxCoords returns a fresh copy of the upper-bound corner.
func (iv Interval) MaxCoords() []int {
	out := make([]int, len(iv.max))
	copy(out, iv.max)
	return out
}

// Size returns the extent along dimension d (max-min+1, possibly zero).
// Panics with ErrDimensionIndex if d is out of range.
func (iv Interval) Size(d int) int {
	iv.checkDim(d)
	return iv.max[d] - iv.min[d] + 1
}

// NumElements returns the total number of coordinates inside the interval,
// the product of all per-dimension extents. Zero if any extent is empty.
// Complexity: O(n).
func (iv Interval) NumElements() int {
	total := 1
	for d := range iv.min {
		total *= iv.max[d] - iv.min[d] + 1
	}
	return total
}

// Contains reports whether coords lies inside the interval.
// Panics with ErrDimensionMismatch if len(coords) != NumDimensions().
// Complexity: O(n).
func (iv Interval) Contains(coords []int) bool {
	if len(coords) != len(iv.min) {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", ErrDimensionMismatch, len(coords), len(iv.min)))
	}
	for d, x := range coords {
		if x < iv.min[d] || x > iv.max[d] {
			return false
		}
	}
	return true
}

// Equals reports whether two intervals have identical bounds.
func (iv Interval) Equals(other Interval) bool {
	if len(iv.min) != len(other.min) {
		return false
	}
	for d := range iv.min {
		if iv.min[d] != other.min[d] || iv.max[d] != other.max[d] {
			return false
		}
	}
	return true
}

// String renders the interval as "[min..max]x[min..max]..." for debugging.
func (iv Interval) String() string {
	var b strings.Builder
	for d := range iv.min {
		if d > 0 {
			b.WriteByte('x')
		}
		fmt.Fprintf(&b, "[%d..%d]", iv.min[d], iv.max[d])
	}
	return b.String()
}

func (iv Interval) checkDim(d int) {
	if d < 0 || d >= len(iv.min) {
		panic(fmt.Errorf("%w: d=%d, dimensionality %d", ErrDimensionIndex, d, len(iv.min)))
	}
}
