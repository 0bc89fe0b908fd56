package view

import (
	"github.com/katalvlaran/ndview/core"
)

// Permuted reorders the axes of a source: outer dimension d corresponds to
// source dimension perm[d].
type Permuted[T any] struct {
	src  core.BoundedRandomAccessible[T]
	perm []int // perm[d] = source axis behind outer axis d
	iv   core.Interval
}

// Permute swaps axes a and b of src.
// Returns ErrNilSource for a nil source, core.ErrDimensionIndex for an
// axis outside the source dimensionality.
func Permute[T any](src core.BoundedRandomAccessible[T], a, b int) (*Permuted[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if err := checkAxis(a, n); err != nil {
		return nil, err
	}
	if err := checkAxis(b, n); err != nil {
		return nil, err
	}
	perm := identity(n)
	perm[a], perm[b] = perm[b], perm[a]
	return newPermuted(src, perm), nil
}

// MoveAxis moves axis from to position to, shifting the axes in between:
// e.g. MoveAxis(X, 0, n-1) makes the old fastest-varying axis the last one.
// Returns ErrNilSource for a nil source, core.ErrDimensionIndex for an
// axis outside the source dimensionality.
func MoveAxis[T any](src core.BoundedRandomAccessible[T], from, to int) (*Permuted[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.NumDimensions()
	if err := checkAxis(from, n); err != nil {
		return nil, err
	}
	if err := checkAxis(to, n); err != nil {
		return nil, err
	}
	perm := make([]int, 0, n)
	for d := 0; d < n; d++ {
		if d != from {
			perm = append(perm, d)
		}
	}
	perm = append(perm[:to], append([]int{from}, perm[to:]...)...)
	return newPermuted(src, perm), nil
}

// Rotate turns src by 90° in the (from, to) plane, rotating the from axis
// toward the to axis, and keeps the result inside the source bounds (the
// rotated interval's extents are those of src with from and to swapped).
// It is pure composition: an axis swap followed by a flip.
func Rotate[T any](src core.BoundedRandomAccessible[T], from, to int) (*Flipped[T], error) {
	p, err := Permute(src, from, to)
	if err != nil {
		return nil, err
	}
	return Flip[T](p, from)
}

func identity(n int) []int {
	perm := make([]int, n)
	for d := range perm {
		perm[d] = d
	}
	return perm
}

func newPermuted[T any](src core.BoundedRandomAccessible[T], perm []int) *Permuted[T] {
	siv := src.Interval()
	n := len(perm)
	min, max := make([]int, n), make([]int, n)
	for d := 0; d < n; d++ {
		min[d] = siv.Min(perm[d])
		max[d] = siv.Max(perm[d])
	}
	// Bounds were validated by the source's own interval; a permutation
	// cannot invalidate them.
	iv, _ := core.NewInterval(min, max)
	return &Permuted[T]{src: src, perm: perm, iv: iv}
}

// NumDimensions returns the dimensionality (unchanged by permutation).
func (v *Permuted[T]) NumDimensions() int { return len(v.perm) }

// Interval returns the permuted domain.
func (v *Permuted[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the source origin, axes reordered.
func (v *Permuted[T]) RandomAccess() core.RandomAccess[T] {
	return &permuteAccess[T]{inner: v.src.RandomAccess(), perm: v.perm, tmp: make([]int, len(v.perm))}
}

// Cursor returns a scan-order cursor over the permuted domain. Note that
// scan order is defined on the OUTER axes: permuting axes changes the
// order in which source coordinates are visited.
func (v *Permuted[T]) Cursor() core.Cursor[T] { return NewCursor[T](v, v.iv) }

type permuteAccess[T any] struct {
	inner core.RandomAccess[T]
	perm  []int
	tmp   []int
}

func (a *permuteAccess[T]) NumDimensions() int { return len(a.perm) }

func (a *permuteAccess[T]) Position(d int) int {
	checkDim(d, len(a.perm))
	return a.inner.Position(a.perm[d])
}

func (a *permuteAccess[T]) Localize(dst []int) {
	checkLen(len(dst), len(a.perm))
	for d, p := range a.perm {
		dst[d] = a.inner.Position(p)
	}
}

func (a *permuteAccess[T]) SetPosition(coords []int) {
	checkLen(len(coords), len(a.perm))
	for d, p := range a.perm {
		a.tmp[p] = coords[d]
	}
	a.inner.SetPosition(a.tmp)
}

func (a *permuteAccess[T]) Move(distance, d int) {
	checkDim(d, len(a.perm))
	a.inner.Move(distance, a.perm[d])
}

func (a *permuteAccess[T]) MoveBy(distance []int) {
	checkLen(len(distance), len(a.perm))
	for d, dist := range distance {
		a.inner.Move(dist, a.perm[d])
	}
}

func (a *permuteAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *permuteAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *permuteAccess[T]) Get() T  { return a.inner.Get() }
func (a *permuteAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *permuteAccess[T]) Copy() core.RandomAccess[T] {
	return &permuteAccess[T]{inner: a.inner.Copy(), perm: a.perm, tmp: make([]int, len(a.perm))}
}
