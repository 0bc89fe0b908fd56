package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// Subsampled keeps every steps[d]-th sample along each dimension: outer
// coordinate k on dimension d reads source coordinate srcMin[d]+k·steps[d].
// The domain is zero-min with extents ceil(srcSize/step).
type Subsampled[T any] struct {
	src    core.BoundedRandomAccessible[T]
	steps  []int
	srcMin []int
	iv     core.Interval
}

// Subsample decimates src by the given per-dimension steps.
// Returns ErrNilSource for a nil source, core.ErrDimensionMismatch on a
// wrong step count, ErrBadStep for a step < 1.
func Subsample[T any](src core.BoundedRandomAccessible[T], steps ...int) (*Subsampled[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if len(steps) != n {
		return nil, fmt.Errorf("%w: got %d steps for %d dimensions", core.ErrDimensionMismatch, len(steps), n)
	}
	siv := src.Interval()
	dims := make([]int, n)
	for d, step := range steps {
		if step < 1 {
			return nil, fmt.Errorf("%w: dimension %d has step %d", ErrBadStep, d, step)
		}
		dims[d] = (siv.Size(d) + step - 1) / step
	}
	iv, err := core.NewZeroMin(dims...)
	if err != nil {
		return nil, err
	}
	return &Subsampled[T]{
		src:    src,
		steps:  append([]int(nil), steps...),
		srcMin: siv.MinCoords(),
		iv:     iv,
	}, nil
}

// NumDimensions returns the dimensionality (unchanged by subsampling).
func (v *Subsampled[T]) NumDimensions() int { return len(v.steps) }

// Interval returns the decimated, zero-min domain.
func (v *Subsampled[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the outer origin (the source min).
func (v *Subsampled[T]) RandomAccess() core.RandomAccess[T] {
	// A fresh inner accessor sits at the source min, outer position zero.
	return &subsampleAccess[T]{
		inner:  v.src.RandomAccess(),
		steps:  v.steps,
		srcMin: v.srcMin,
		tmp:    make([]int, len(v.steps)),
	}
}

// Cursor returns a scan-order cursor over the decimated domain.
func (v *Subsampled[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

// subsampleAccess scales every move by the per-dimension step; the outer
// position is recovered from the inner one, which by construction always
// sits on the subsampling grid.
type subsampleAccess[T any] struct {
	inner  core.RandomAccess[T]
	steps  []int
	srcMin []int
	tmp    []int
}

func (a *subsampleAccess[T]) NumDimensions() int { return len(a.steps) }

func (a *subsampleAccess[T]) Position(d int) int {
	checkDim(d, len(a.steps))
	return (a.inner.Position(d) - a.srcMin[d]) / a.steps[d]
}

func (a *subsampleAccess[T]) Localize(dst []int) {
	checkLen(len(dst), len(a.steps))
	for d := range a.steps {
		dst[d] = (a.inner.Position(d) - a.srcMin[d]) / a.steps[d]
	}
}

func (a *subsampleAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), len(a.steps))
	for d, x := range coords {
		a.tmp[d] = a.srcMin[d] + x*a.steps[d]
	}
	a.inner.SetPosition(a.tmp)
}

func (a *subsampleAccess[T]) Move(distance, d int) {
	checkDim(d, len(a.steps))
	a.inner.Move(distance*a.steps[d], d)
}

func (a *subsampleAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), len(a.steps))
	for d, dist := range distance {
		a.inner.Move(dist*a.steps[d], d)
	}
}

func (a *subsampleAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *subsampleAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *subsampleAccess[T]) Get() T  { return a.inner.Get() }
func (a *subsampleAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *subsampleAccess[T]) Copy() core.RandomAccess[T] {
	return &subsampleAccess[T]{inner: a.inner.Copy(), steps: a.steps, srcMin: a.srcMin, tmp: make([]int, len(a.tmp))}
}
