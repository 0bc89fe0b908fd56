package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// Translated shifts a source by an offset vector: outer coordinate x reads
// source coordinate x - t. The transform parameters are immutable.
type Translated[T any] struct {
	src core.BoundedRandomAccessible[T]
	t   []int
	iv  core.Interval
}

// Translate shifts src by t: the view's domain is the source domain moved
// by +t, and view coordinate x maps to source coordinate x-t.
// Returns ErrNilSource for a nil source, core.ErrDimensionMismatch if
// len(t) differs from the source dimensionality.
// Complexity: O(n) construction, O(1) per subsequent access.
func Translate[T any](src core.BoundedRandomAccessible[T], t ...int) (*Translated[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if len(t) != n {
		return nil, fmt.Errorf("%w: got %d offsets for %d dimensions", core.ErrDimensionMismatch, len(t), n)
	}
	siv := src.Interval()
	min, max := siv.MinCoords(), siv.MaxCoords()
	for d := range min {
		min[d] += t[d]
		max[d] += t[d]
	}
	iv, err := core.NewInterval(min, max)
	if err != nil {
		return nil, err
	}
	return &Translated[T]{src: src, t: append([]int(nil), t...), iv: iv}, nil
}

// ZeroMin shifts src so that its lower bound sits at the origin.
func ZeroMin[T any](src core.BoundedRandomAccessible[T]) (*Translated[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	t := src.Interval().MinCoords()
	for d := range t {
		t[d] = -t[d]
	}
	return Translate(src, t...)
}

// NumDimensions returns the dimensionality (unchanged by translation).
func (v *Translated[T]) NumDimensions() int { return len(v.t) }

// Interval returns the shifted domain.
func (v *Translated[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the view's origin.
func (v *Translated[T]) RandomAccess() core.RandomAccess[T] {
	// A fresh inner accessor sits at the source origin, which already is
	// the outer origin: outer = inner + t.
	return &translateAccess[T]{inner: v.src.RandomAccess(), t: v.t, tmp: make([]int, len(v.t))}
}

// Cursor returns a scan-order cursor over the shifted domain.
func (v *Translated[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// translateAccess derives its outer position from the inner accessor:
// outer = inner + t, so no duplicate position state is kept.
type translateAccess[T any] struct {
	inner core.RandomAccess[T]
	t     []int
	tmp   []int
}

func (a *translateAccess[T]) NumDimensions() int { return len(a.t) }

func (a *translateAccess[T]) Position(d int) int {
	checkDim(d, len(a.t))
	return a.inner.Position(d) + a.t[d]
}

func (a *translateAccess[T]) Localize(dst []int) {
	a.inner.Localize(dst)
	for d := range a.t {
		dst[d] += a.t[d]
	}
}

func (a *translateAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), len(a.t))
	for d, x := range coords {
		a.tmp[d] = x - a.t[d]
	}
	a.inner.SetPosition(a.tmp)
}

func (a *translateAccess[T]) Move(distance, d int)  { a.inner.Move(distance, d) }
func (a *translateAccess[T]) MoveBy(distance []int) { a.inner.MoveBy(distance) }
func (a *translateAccess[T]) Fwd(d int)             { a.inner.Fwd(d) }
func (a *translateAccess[T]) Bck(d int)             { a.inner.Bck(d) }

func (a *translateAccess[T]) Get() T  { return a.inner.Get() }
func (a *translateAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *translateAccess[T]) Copy() core.RandomAccess[T] {
	return &translateAccess[T]{inner: a.inner.Copy(), t: a.t, tmp: make([]int, len(a.t))}
}
