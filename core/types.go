// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: accessor capability contracts shared by containers and views.

package core

import "golang.org/x/exp/constraints"

// Numeric constrains the element kinds for which ndview provides numeric
// conveniences (zero fill, example pixels). The access layer itself is
// element-agnostic: containers and views accept any element type.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Localizable is the read half of the positional contract: an object that
// knows its current integer position in n-dimensional space.
type Localizable interface {
	// NumDimensions returns the dimensionality n of the coordinate space.
	NumDimensions() int

	// Position returns the current coordinate along dimension d.
	// Panics with ErrDimensionIndex if d is outside [0, NumDimensions()).
	Position(d int) int

	// Localize writes the current position into dst.
	// Panics with ErrDimensionMismatch if len(dst) != NumDimensions().
	Localize(dst []int)
}

// Positionable is the write half of the positional contract: an object
// whose position can be set absolutely or moved relatively. All methods
// are O(1) per dimension touched and perform no bounds checking against
// any interval (see doc.go).
type Positionable interface {
	// SetPosition sets the absolute position.
	// Panics with ErrDimensionMismatch if len(coords) != NumDimensions().
	SetPosition(coords []int)

	// Move adds distance to the coordinate along dimension d.
	// Panics with ErrDimensionIndex if d is out of range.
	Move(distance, d int)

	// MoveBy adds a relative offset vector to the position.
	// Panics with ErrDimensionMismatch if len(distance) != NumDimensions().
	MoveBy(distance []int)

	// Fwd is Move(1, d).
	Fwd(d int)

	// Bck is Move(-1, d).
	Bck(d int)
}

// RandomAccess seeks to arbitrary coordinates in O(1) and reads or writes
// the element there. Instances are cheap, mutable, and single-owner: never
// share one across goroutines; create one per goroutine instead.
type RandomAccess[T any] interface {
	Localizable
	Positionable

	// Get returns the element at the current position.
	Get() T

	// Set stores v at the current position. Views that cannot write
	// through (a constant out-of-bounds value) document Set as a no-op.
	Set(v T)

	// Copy returns an independent accessor at the same position, sharing
	// the same immutable transform chain.
	Copy() RandomAccess[T]
}

// Cursor traverses every coordinate of a governing interval exactly once,
// in a fixed scan order: dimension 0 varies fastest. A fresh or Reset
// cursor sits one-before-first, so the first Next yields the first element.
type Cursor[T any] interface {
	Localizable

	// HasNext reports whether at least one coordinate remains unvisited.
	HasNext() bool

	// Next advances to the next coordinate in scan order and returns the
	// element there. Calling Next with HasNext()==false is undefined.
	Next() T

	// Fwd advances without reading, equivalent to discarding Next's result.
	Fwd()

	// Get returns the element at the current coordinate. Undefined before
	// the first Next/Fwd after construction or Reset.
	Get() T

	// Set stores v at the current coordinate.
	Set(v T)

	// Reset rewinds to one-before-first, restoring the cursor's full range.
	Reset()

	// JumpFwd advances by n elements in scan order without visiting the
	// intermediate coordinates. Panics with ErrNegativeCount if n < 0.
	JumpFwd(n int)

	// Remaining returns the exact number of elements Next can still yield.
	Remaining() int

	// TrySplit carves off a prefix of the remaining range and returns an
	// independent cursor over it; the receiver keeps the suffix. The two
	// ranges are disjoint and together cover exactly the pre-split
	// remainder. Returns nil when fewer than two elements remain.
	TrySplit() Cursor[T]
}

// RandomAccessible is a data source that can mint RandomAccess instances:
// every container and every view implements it.
type RandomAccessible[T any] interface {
	// NumDimensions returns the dimensionality of the source.
	NumDimensions() int

	// RandomAccess returns a fresh accessor positioned at the origin.
	RandomAccess() RandomAccess[T]
}

// Bounded is a source with a known valid domain.
type Bounded interface {
	// Interval returns the source's valid domain. The returned value is
	// immutable and safe to share.
	Interval() Interval
}

// BoundedRandomAccessible combines random access with a known domain; it
// is what most view constructors require of their source.
type BoundedRandomAccessible[T any] interface {
	RandomAccessible[T]
	Bounded
}

// Iterable is a source that can mint cursors over its domain.
type Iterable[T any] interface {
	// Cursor returns a fresh cursor positioned one-before-first.
	Cursor() Cursor[T]
}
