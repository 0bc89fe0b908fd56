package view

import (
	"github.com/katalvlaran/ndview/core"
)

// Flipped mirrors one axis within the source bounds: along the flipped
// axis, outer coordinate x reads source coordinate min+max-x. The domain
// is unchanged.
type Flipped[T any] struct {
	src  core.BoundedRandomAccessible[T]
	axis int
	sum  int // min+max of the flipped axis; inner = sum - outer
	iv   core.Interval
}

// Flip mirrors src along axis.
// Returns ErrNilSource for a nil source, core.ErrDimensionIndex for an
// axis outside the source dimensionality.
func Flip[T any](src core.BoundedRandomAccessible[T], axis int) (*Flipped[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := checkAxis(axis, src.NumDimensions()); err != nil {
		return nil, err
	}
	iv := src.Interval()
	return &Flipped[T]{src: src, axis: axis, sum: iv.Min(axis) + iv.Max(axis), iv: iv}, nil
}

// NumDimensions returns the dimensionality (unchanged by flipping).
func (v *Flipped[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the domain, identical to the source's.
func (v *Flipped[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the outer origin of the flip.
func (v *Flipped[T]) RandomAccess() core.RandomAccess[T] {
	a := &flipAccess[T]{inner: v.src.RandomAccess(), axis: v.axis, sum: v.sum, tmp: make([]int, v.iv.NumDimensions())}
	// A fresh inner accessor sits at the source origin; reflecting puts the
	// outer position at the flipped axis' max, so move the inner accessor
	// to the max to land the outer position on the min.
	a.inner.Move(v.iv.Max(v.axis)-a.inner.Position(v.axis), v.axis)
	return a
}

// Cursor returns a scan-order cursor over the domain.
func (v *Flipped[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// flipAccess derives its outer position from the inner accessor: equal on
// every axis except the flipped one, where outer = sum - inner.
type flipAccess[T any] struct {
	inner core.RandomAccess[T]
	axis  int
	sum   int
	tmp   []int
}

func (a *flipAccess[T]) NumDimensions() int { return a.inner.NumDimensions() }

func (a *flipAccess[T]) Position(d int) int {
	if d == a.axis {
		return a.sum - a.inner.Position(d)
	}
	return a.inner.Position(d)
}

func (a *flipAccess[T]) Localize(dst []int) {
	a.inner.Localize(dst)
	dst[a.axis] = a.sum - dst[a.axis]
}

func (a *flipAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), a.inner.NumDimensions())
	copy(a.tmp, coords)
	a.tmp[a.axis] = a.sum - coords[a.axis]
	a.inner.SetPosition(a.tmp)
}

func (a *flipAccess[T]) Move(distance, d int) {
	if d == a.axis {
		distance = -distance
	}
	a.inner.Move(distance, d)
}

func (a *flipAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), a.inner.NumDimensions())
	for d, dist := range distance {
		a.Move(dist, d)
	}
}

func (a *flipAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *flipAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *flipAccess[T]) Get() T  { return a.inner.Get() }
func (a *flipAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *flipAccess[T]) Copy() core.RandomAccess[T] {
	return &flipAccess[T]{inner: a.inner.Copy(), axis: a.axis, sum: a.sum, tmp: make([]int, len(a.tmp))}
}
