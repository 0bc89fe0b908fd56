// SPDX-License-Identifier: MIT
//
// File: collapse.go
// Role: fold the last axis into vector-valued composite elements.

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/composite"
	"github.com/katalvlaran/ndview/core"
)

// Collapsed folds the last axis of a source into composite elements: an
// n-dimensional source of T becomes an (n-1)-dimensional view whose pixels
// are fixed-length vectors over the folded axis. No sample is copied; each
// composite reads through to the source on demand.
type Collapsed[T any] struct {
	src    core.BoundedRandomAccessible[T]
	iv     core.Interval // the source interval minus the folded axis
	axis   int           // the folded source axis, always src dims - 1
	min    int           // source min along the folded axis
	length int           // source extent along the folded axis
}

// Collapse folds the last axis of src. The source needs at least one
// dimension and a non-empty last axis, else core.ErrIncompatibleTransform;
// collapsing a 1-D source yields a 0-dimensional view holding one vector.
// To fold a different axis, MoveAxis it last first.
func Collapse[T any](src core.BoundedRandomAccessible[T]) (*Collapsed[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if n < 1 {
		return nil, fmt.Errorf("%w: cannot collapse a %d-dimensional source", core.ErrIncompatibleTransform, n)
	}
	siv := src.Interval()
	axis := n - 1
	length := siv.Size(axis)
	if length < 1 {
		return nil, fmt.Errorf("%w: collapsed axis is empty", core.ErrIncompatibleTransform)
	}
	iv, err := core.NewInterval(siv.MinCoords()[:axis], siv.MaxCoords()[:axis])
	if err != nil {
		return nil, err
	}
	return &Collapsed[T]{src: src, iv: iv, axis: axis, min: siv.Min(axis), length: length}, nil
}

// NumDimensions returns the source dimensionality minus one.
func (v *Collapsed[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the collapsed domain.
func (v *Collapsed[T]) Interval() core.Interval { return v.iv }

// Length returns the vector length of the composite elements, the source
// extent along the folded axis.
func (v *Collapsed[T]) Length() int { return v.length }

// RandomAccess returns an accessor over composite elements.
func (v *Collapsed[T]) RandomAccess() core.RandomAccess[*composite.Composite[T]] {
	inner := v.src.RandomAccess()
	// Pin the folded axis at its min; the composite moves it per Get(i).
	inner.Move(v.min-inner.Position(v.axis), v.axis)
	comp, err := composite.New(inner, v.axis, v.min, v.length)
	if err != nil {
		// Construction already validated axis and length.
		panic(err)
	}
	return &collapseAccess[T]{inner: inner, comp: comp, n: v.iv.NumDimensions(), axis: v.axis, min: v.min}
}

// Cursor returns a scan-order cursor over the collapsed domain.
func (v *Collapsed[T]) Cursor() core.Cursor[*composite.Composite[T]] {
	return NewCursor[*composite.Composite[T]](v, v.iv)
}

// collapseAccess drives the leading axes of one inner accessor and hands
// out the single composite bound to it: the composite returned by Get is
// shared, valid until the accessor moves, never cached by value.
type collapseAccess[T any] struct {
	inner core.RandomAccess[T]
	comp  *composite.Composite[T]
	n     int
	axis  int
	min   int
}

func (a *collapseAccess[T]) NumDimensions() int { return a.n }

func (a *collapseAccess[T]) Position(d int) int {
	checkDim(d, a.n)
	return a.inner.Position(d)
}

func (a *collapseAccess[T]) Localize(dst []int) {
	checkLen(len(dst), a.n)
	for d := range dst {
		dst[d] = a.inner.Position(d)
	}
}

func (a *collapseAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), a.n)
	for d, x := range coords {
		a.inner.Move(x-a.inner.Position(d), d)
	}
}

func (a *collapseAccess[T]) Move(distance, d int) {
	checkDim(d, a.n)
	a.inner.Move(distance, d)
}

func (a *collapseAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), a.n)
	for d, dist := range distance {
		a.inner.Move(dist, d)
	}
}

func (a *collapseAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *collapseAccess[T]) Bck(d int) { a.Move(-1, d) }

// Get returns the composite at the current position. The instance is
// shared with the accessor: reading it after the accessor moves reads the
// new position's vector.
func (a *collapseAccess[T]) Get() *composite.Composite[T] { return a.comp }

// Set copies all samples of c into the vector at the current position.
func (a *collapseAccess[T]) Set(c *composite.Composite[T]) {
	n := c.Len()
	if n > a.comp.Len() {
		n = a.comp.Len()
	}
	for i := 0; i < n; i++ {
		a.comp.Set(i, c.Get(i))
	}
}

func (a *collapseAccess[T]) Copy() core.RandomAccess[*composite.Composite[T]] {
	inner := a.inner.Copy()
	comp, err := composite.New(inner, a.axis, a.min, a.comp.Len())
	if err != nil {
		panic(err) // parameters proven valid at view construction
	}
	return &collapseAccess[T]{inner: inner, comp: comp, n: a.n, axis: a.axis, min: a.min}
}
