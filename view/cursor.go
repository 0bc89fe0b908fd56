// SPDX-License-Identifier: MIT
//
// File: cursor.go
// Role: scan-order cursor over any RandomAccessible restricted to an interval.

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// intervalCursor walks every coordinate of an interval in scan order
// (dimension 0 fastest) by driving a RandomAccess of the wrapped source.
// It numbers the interval's coordinates 0..NumElements()-1 and covers the
// half-open range [first, end); index is the number of the coordinate most
// recently visited, or first-1 when one-before-first.
type intervalCursor[T any] struct {
	src core.RandomAccessible[T]
	ra  core.RandomAccess[T]

	min, max []int
	sizes    []int
	strides  []int // scan-order strides over sizes, dimension 0 fastest

	pos   []int
	index int
	first int
	end   int
}

// NewCursor returns a cursor visiting every coordinate of iv, in scan
// order, through accessors of src. It is the cursor every view hands out;
// it is exported so that algorithms can iterate an arbitrary
// RandomAccessible over an arbitrary domain (e.g. a Crop of an Extend).
//
// Panics with core.ErrDimensionMismatch if iv's dimensionality differs
// from src's — construction-provided intervals are programming input, not
// runtime data.
func NewCursor[T any](src core.RandomAccessible[T], iv core.Interval) core.Cursor[T] {
	if iv.NumDimensions() != src.NumDimensions() {
		panic(fmt.Errorf("%w: interval has %d dimensions, source %d", core.ErrDimensionMismatch, iv.NumDimensions(), src.NumDimensions()))
	}
	n := iv.NumDimensions()
	c := &intervalCursor[T]{
		src:     src,
		ra:      src.RandomAccess(),
		min:     iv.MinCoords(),
		max:     iv.MaxCoords(),
		sizes:   make([]int, n),
		strides: make([]int, n),
		pos:     make([]int, n),
		end:     iv.NumElements(),
	}
	stride := 1
	for d := 0; d < n; d++ {
		c.sizes[d] = c.max[d] - c.min[d] + 1
		c.strides[d] = stride
		stride *= c.sizes[d]
	}
	c.seek(c.first - 1)
	return c
}

func (c *intervalCursor[T]) NumDimensions() int { return len(c.pos) }

func (c *intervalCursor[T]) Position(d int) int {
	checkDim(d, len(c.pos))
	return c.pos[d]
}

func (c *intervalCursor[T]) Localize(dst []int) {
	checkLen(len(dst), len(c.pos))
	copy(dst, c.pos)
}

func (c *intervalCursor[T]) HasNext() bool { return c.index+1 < c.end }

func (c *intervalCursor[T]) Next() T {
	c.Fwd()
	return c.ra.Get()
}

// Fwd advances one coordinate in scan order, incrementally: the fast path
// is a single Fwd(0) on the wrapped accessor; each overflowing dimension
// rewinds to its min and carries into the next.
func (c *intervalCursor[T]) Fwd() {
	c.index++
	for d := 0; d < len(c.pos); d++ {
		c.pos[d]++
		if c.pos[d] <= c.max[d] {
			c.ra.Fwd(d)
			return
		}
		// Rewind this axis (the accessor still sits at pos[d]-1) and
		// carry into the next.
		c.ra.Move(c.min[d]-c.pos[d]+1, d)
		c.pos[d] = c.min[d]
	}
}

func (c *intervalCursor[T]) Get() T { return c.ra.Get() }

func (c *intervalCursor[T]) Set(v T) { c.ra.Set(v) }

func (c *intervalCursor[T]) Reset() { c.seek(c.first - 1) }

// JumpFwd advances by n coordinates without visiting them: O(dims), not
// O(n) — the target position is computed arithmetically.
func (c *intervalCursor[T]) JumpFwd(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: n=%d", core.ErrNegativeCount, n))
	}
	c.seek(c.index + n)
}

func (c *intervalCursor[T]) Remaining() int { return c.end - c.index - 1 }

// TrySplit carves the first half of the remaining range into a new cursor
// with its own accessor; the receiver keeps the second half.
func (c *intervalCursor[T]) TrySplit() core.Cursor[T] {
	r := c.Remaining()
	if r < 2 {
		return nil
	}
	half := r / 2
	prefix := &intervalCursor[T]{
		src:     c.src,
		ra:      c.src.RandomAccess(),
		min:     c.min,
		max:     c.max,
		sizes:   c.sizes,
		strides: c.strides,
		pos:     make([]int, len(c.pos)),
		first:   c.index + 1,
		end:     c.index + 1 + half,
	}
	prefix.seek(prefix.first - 1)
	c.first = c.index + 1 + half
	c.seek(c.first - 1)
	return prefix
}

// seek repositions the cursor at an arbitrary scan-order index, including
// the one-before-first index first-1, and synchronizes the accessor.
func (c *intervalCursor[T]) seek(index int) {
	c.index = index
	if c.end == c.first {
		// Empty range: position is immaterial, only bookkeeping matters.
		copy(c.pos, c.min)
		return
	}
	if len(c.pos) == 0 {
		// A 0-dimensional domain has exactly one coordinate, the empty
		// tuple, and the accessor already sits on it.
		return
	}
	// Decompose a valid index; for one-before-first decompose the first
	// index and step back once along dimension 0.
	base, back := index, 0
	if index < c.first {
		base, back = c.first, 1
	}
	for d := range c.pos {
		c.pos[d] = c.min[d] + (base/c.strides[d])%c.sizes[d]
	}
	c.pos[0] -= back
	c.ra.SetPosition(c.pos)
}
