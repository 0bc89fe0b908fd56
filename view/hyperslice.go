package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// HyperSliced fixes one source axis at a coordinate, removing it from the
// view: an n-dimensional source yields an (n-1)-dimensional view.
type HyperSliced[T any] struct {
	src  core.BoundedRandomAccessible[T]
	axis int
	pos  int
	iv   core.Interval
}

// HyperSlice fixes src's given axis at pos. The source must have at least
// two dimensions (slicing a 1-D source would leave nothing to address).
// pos is not bounds-checked: slicing outside the source is as legal as any
// other out-of-bounds access and is given meaning by Extend.
// Returns ErrNilSource, core.ErrIncompatibleTransform for a 1-D source,
// core.ErrDimensionIndex for a bad axis.
func HyperSlice[T any](src core.BoundedRandomAccessible[T], axis, pos int) (*HyperSliced[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if n < 2 {
		return nil, fmt.Errorf("%w: cannot slice a %d-dimensional source", core.ErrIncompatibleTransform, n)
	}
	if err := checkAxis(axis, n); err != nil {
		return nil, err
	}
	siv := src.Interval()
	min, max := make([]int, 0, n-1), make([]int, 0, n-1)
	for d := 0; d < n; d++ {
		if d == axis {
			continue
		}
		min = append(min, siv.Min(d))
		max = append(max, siv.Max(d))
	}
	iv, err := core.NewInterval(min, max)
	if err != nil {
		return nil, err
	}
	return &HyperSliced[T]{src: src, axis: axis, pos: pos, iv: iv}, nil
}

// NumDimensions returns the source dimensionality minus one.
func (v *HyperSliced[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the sliced domain (the source bounds minus the fixed axis).
func (v *HyperSliced[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the view origin, the fixed axis
// pinned at the slicing coordinate.
func (v *HyperSliced[T]) RandomAccess() core.RandomAccess[T] {
	a := &hyperSliceAccess[T]{
		inner: v.src.RandomAccess(),
		axis:  v.axis,
		tmp:   make([]int, v.src.NumDimensions()),
	}
	// Pin the sliced axis; the other axes stay at the source origin.
	a.inner.Move(v.pos-a.inner.Position(v.axis), v.axis)
	return a
}

// Cursor returns a scan-order cursor over the sliced domain.
func (v *HyperSliced[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// hyperSliceAccess maps outer dimension d to inner dimension d (below the
// fixed axis) or d+1 (above it); the fixed axis never moves after
// construction.
type hyperSliceAccess[T any] struct {
	inner core.RandomAccess[T]
	axis  int
	tmp   []int
}

func (a *hyperSliceAccess[T]) innerDim(d int) int {
	if d < a.axis {
		return d
	}
	return d + 1
}

func (a *hyperSliceAccess[T]) NumDimensions() int { return a.inner.NumDimensions() - 1 }

func (a *hyperSliceAccess[T]) Position(d int) int {
	checkDim(d, a.NumDimensions())
	return a.inner.Position(a.innerDim(d))
}

func (a *hyperSliceAccess[T]) Localize(dst []int) {
	checkLen(len(dst), a.NumDimensions())
	for d := range dst {
		dst[d] = a.inner.Position(a.innerDim(d))
	}
}

func (a *hyperSliceAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), a.NumDimensions())
	a.tmp[a.axis] = a.inner.Position(a.axis)
	for d, x := range coords {
		a.tmp[a.innerDim(d)] = x
	}
	a.inner.SetPosition(a.tmp)
}

func (a *hyperSliceAccess[T]) Move(distance, d int) {
	checkDim(d, a.NumDimensions())
	a.inner.Move(distance, a.innerDim(d))
}

func (a *hyperSliceAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), a.NumDimensions())
	for d, dist := range distance {
		a.inner.Move(dist, a.innerDim(d))
	}
}

func (a *hyperSliceAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *hyperSliceAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *hyperSliceAccess[T]) Get() T  { return a.inner.Get() }
func (a *hyperSliceAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *hyperSliceAccess[T]) Copy() core.RandomAccess[T] {
	return &hyperSliceAccess[T]{inner: a.inner.Copy(), axis: a.axis, tmp: make([]int, len(a.tmp))}
}

// AddedDimension appends one axis to a source: the new last coordinate is
// carried by the view but ignored when addressing the source, so every
// slice along it aliases the same source data.
type AddedDimension[T any] struct {
	src core.BoundedRandomAccessible[T]
	iv  core.Interval
}

// AddDimension appends an axis spanning min..max (inclusive) to src.
// Returns ErrNilSource for a nil source, core.ErrBadInterval if
// min > max+1.
func AddDimension[T any](src core.BoundedRandomAccessible[T], min, max int) (*AddedDimension[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	siv := src.Interval()
	lo := append(siv.MinCoords(), min)
	hi := append(siv.MaxCoords(), max)
	iv, err := core.NewInterval(lo, hi)
	if err != nil {
		return nil, err
	}
	return &AddedDimension[T]{src: src, iv: iv}, nil
}

// NumDimensions returns the source dimensionality plus one.
func (v *AddedDimension[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the widened domain.
func (v *AddedDimension[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the view origin.
func (v *AddedDimension[T]) RandomAccess() core.RandomAccess[T] {
	n := v.iv.NumDimensions()
	return &addDimAccess[T]{inner: v.src.RandomAccess(), extra: v.iv.Min(n - 1)}
}

// Cursor returns a scan-order cursor over the widened domain: the source
// is visited once per coordinate of the added axis.
func (v *AddedDimension[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// addDimAccess tracks the extra coordinate itself and forwards everything
// else to the inner accessor.
type addDimAccess[T any] struct {
	inner core.RandomAccess[T]
	extra int
}

func (a *addDimAccess[T]) NumDimensions() int { return a.inner.NumDimensions() + 1 }

func (a *addDimAccess[T]) Position(d int) int {
	checkDim(d, a.NumDimensions())
	if d == a.inner.NumDimensions() {
		return a.extra
	}
	return a.inner.Position(d)
}

func (a *addDimAccess[T]) Localize(dst []int) {
	checkLen(len(dst), a.NumDimensions())
	n := a.inner.NumDimensions()
	a.inner.Localize(dst[:n])
	dst[n] = a.extra
}

func (a *addDimAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), a.NumDimensions())
	n := a.inner.NumDimensions()
	a.inner.SetPosition(coords[:n])
	a.extra = coords[n]
}

func (a *addDimAccess[T]) Move(distance, d int) {
	checkDim(d, a.NumDimensions())
	if d == a.inner.NumDimensions() {
		a.extra += distance
		return
	}
	a.inner.Move(distance, d)
}

func (a *addDimAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), a.NumDimensions())
	n := a.inner.NumDimensions()
	a.inner.MoveBy(distance[:n])
	a.extra += distance[n]
}

func (a *addDimAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *addDimAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *addDimAccess[T]) Get() T  { return a.inner.Get() }
func (a *addDimAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *addDimAccess[T]) Copy() core.RandomAccess[T] {
	return &addDimAccess[T]{inner: a.inner.Copy(), extra: a.extra}
}
