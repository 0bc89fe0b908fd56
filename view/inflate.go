// SPDX-License-Identifier: MIT
//
// File: inflate.go
// Role: unfold composite elements back into a real axis.

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/composite"
	"github.com/katalvlaran/ndview/core"
)

// Inflated is the inverse of Collapsed: a source of composite elements
// gains one axis, appended last and spanning 0..length-1, whose coordinate
// selects the composite sub-index. Inflate(Collapse(X)) equals X
// element-for-element in scan order; the intervals coincide exactly when
// X's last axis has a zero min, otherwise the round trip is X with that
// axis rebased to zero (Translate it back if the original bounds matter).
type Inflated[T any] struct {
	src    core.BoundedRandomAccessible[*composite.Composite[T]]
	iv     core.Interval
	length int
}

// Inflate unfolds the composite elements of src into a real last axis.
// The composite length is probed from the element at the source min
// corner, so the source must be non-empty: an empty source wraps
// core.ErrIncompatibleTransform.
//
// The new axis is 0-based regardless of how the composites index their
// underlying samples, so inflating the collapse of a source with a shifted
// last axis yields that source rebased to zero on the new axis.
// Coordinates outside 0..length-1 on the new axis
// panic with core.ErrIndexOutOfRange on access: the inflated axis is the
// one place where the composite's own sub-index check applies.
func Inflate[T any](src core.BoundedRandomAccessible[*composite.Composite[T]]) (*Inflated[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	siv := src.Interval()
	if siv.NumElements() == 0 {
		return nil, fmt.Errorf("%w: cannot inflate an empty source", core.ErrIncompatibleTransform)
	}
	// Probe the fixed vector length once, at the min corner.
	probe := src.RandomAccess()
	probe.SetPosition(siv.MinCoords())
	length := probe.Get().Len()

	lo := append(siv.MinCoords(), 0)
	hi := append(siv.MaxCoords(), length-1)
	iv, err := core.NewInterval(lo, hi)
	if err != nil {
		return nil, err
	}
	return &Inflated[T]{src: src, iv: iv, length: length}, nil
}

// Interleave unfolds composite elements like Inflate but places the new
// axis at dimension 0, the fastest-varying position: sample vectors come
// out interleaved in scan order. Values are identical to Inflate's; only
// the iteration order differs. Implemented by composition: Inflate, then
// MoveAxis(last, 0).
func Interleave[T any](src core.BoundedRandomAccessible[*composite.Composite[T]]) (*Permuted[T], error) {
	inf, err := Inflate(src)
	if err != nil {
		return nil, err
	}
	return MoveAxis[T](inf, inf.NumDimensions()-1, 0)
}

// NumDimensions returns the source dimensionality plus one.
func (v *Inflated[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the unfolded domain; the last axis spans 0..Length()-1.
func (v *Inflated[T]) Interval() core.Interval { return v.iv }

// Length returns the extent of the unfolded axis.
func (v *Inflated[T]) Length() int { return v.length }

// RandomAccess returns an accessor at the view origin.
func (v *Inflated[T]) RandomAccess() core.RandomAccess[T] {
	return &inflateAccess[T]{inner: v.src.RandomAccess(), n: v.iv.NumDimensions() - 1}
}

// Cursor returns a scan-order cursor over the unfolded domain.
func (v *Inflated[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// inflateAccess carries the unfolded coordinate itself and resolves Get
// and Set through the composite at the inner position.
type inflateAccess[T any] struct {
	inner core.RandomAccess[*composite.Composite[T]]
	sub   int
	n     int // inner dimensionality; the view has n+1 dimensions
}

func (a *inflateAccess[T]) NumDimensions() int { return a.n + 1 }

func (a *inflateAccess[T]) Position(d int) int {
	checkDim(d, a.n+1)
	if d == a.n {
		return a.sub
	}
	return a.inner.Position(d)
}

func (a *inflateAccess[T]) Localize(dst []int) {
	checkLen(len(dst), a.n+1)
	a.inner.Localize(dst[:a.n])
	dst[a.n] = a.sub
}

func (a *inflateAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), a.n+1)
	a.inner.SetPosition(coords[:a.n])
	a.sub = coords[a.n]
}

func (a *inflateAccess[T]) Move(distance, d int) {
	checkDim(d, a.n+1)
	if d == a.n {
		a.sub += distance
		return
	}
	a.inner.Move(distance, d)
}

func (a *inflateAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), a.n+1)
	a.inner.MoveBy(distance[:a.n])
	a.sub += distance[a.n]
}

func (a *inflateAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *inflateAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *inflateAccess[T]) Get() T { return a.inner.Get().Get(a.sub) }

func (a *inflateAccess[T]) Set(v T) { a.inner.Get().Set(a.sub, v) }

func (a *inflateAccess[T]) Copy() core.RandomAccess[T] {
	return &inflateAccess[T]{inner: a.inner.Copy(), sub: a.sub, n: a.n}
}
