package img

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// imgAccess is the leaf RandomAccess: it tracks the current coordinates
// and, incrementally, their linear offset into the backend, so every
// relative move and every Get/Set is O(1).
type imgAccess[T any] struct {
	img    *Img[T]
	pos    []int
	offset int
}

func (a *imgAccess[T]) NumDimensions() int { return len(a.pos) }

func (a *imgAccess[T]) Position(d int) int {
	a.checkDim(d)
	return a.pos[d]
}

func (a *imgAccess[T]) Localize(dst []int) {
	a.checkLen(len(dst))
	copy(dst, a.pos)
}

func (a *imgAccess[T]) SetPosition(coords []int) {
	a.checkLen(len(coords))
	copy(a.pos, coords)
	a.offset = 0
	for d, x := range a.pos {
		a.offset += x * a.img.strides[d]
	}
}

func (a *imgAccess[T]) Move(distance, d int) {
	a.checkDim(d)
	a.pos[d] += distance
	a.offset += distance * a.img.strides[d]
}

func (a *imgAccess[T]) MoveBy(distance []int) {
	a.checkLen(len(distance))
	for d, dist := range distance {
		a.pos[d] += dist
		a.offset += dist * a.img.strides[d]
	}
}

func (a *imgAccess[T]) Fwd(d int) { a.Move(1, d) }
func (a *imgAccess[T]) Bck(d int) { a.Move(-1, d) }

func (a *imgAccess[T]) Get() T { return a.img.acc.At(a.offset) }

func (a *imgAccess[T]) Set(v T) { a.img.acc.SetAt(a.offset, v) }

func (a *imgAccess[T]) Copy() core.RandomAccess[T] {
	cp := &imgAccess[T]{img: a.img, pos: make([]int, len(a.pos)), offset: a.offset}
	copy(cp.pos, a.pos)
	return cp
}

func (a *imgAccess[T]) checkDim(d int) {
	if d < 0 || d >= len(a.pos) {
		panic(fmt.Errorf("%w: d=%d, dimensionality %d", core.ErrDimensionIndex, d, len(a.pos)))
	}
}

func (a *imgAccess[T]) checkLen(n int) {
	if n != len(a.pos) {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", core.ErrDimensionMismatch, n, len(a.pos)))
	}
}
