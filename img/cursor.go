package img

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// imgCursor scans the backend linearly, which IS scan order for a flat
// row-major container. It covers the half-open linear range [first, end);
// index is the offset of the element most recently yielded, or first-1
// when one-before-first.
type imgCursor[T any] struct {
	img   *Img[T]
	index int
	first int
	end   int
}

func (c *imgCursor[T]) NumDimensions() int { return len(c.img.dims) }

func (c *imgCursor[T]) Position(d int) int {
	c.img.checkDim(d)
	return (c.index / c.img.strides[d]) % c.img.dims[d]
}

func (c *imgCursor[T]) Localize(dst []int) {
	if len(dst) != len(c.img.dims) {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", core.ErrDimensionMismatch, len(dst), len(c.img.dims)))
	}
	idx := c.index
	for d, size := range c.img.dims {
		dst[d] = idx % size
		idx /= size
	}
}

func (c *imgCursor[T]) HasNext() bool { return c.index+1 < c.end }

func (c *imgCursor[T]) Next() T {
	c.index++
	return c.img.acc.At(c.index)
}

func (c *imgCursor[T]) Fwd() { c.index++ }

func (c *imgCursor[T]) Get() T { return c.img.acc.At(c.index) }

func (c *imgCursor[T]) Set(v T) { c.img.acc.SetAt(c.index, v) }

func (c *imgCursor[T]) Reset() { c.index = c.first - 1 }

// JumpFwd advances by n elements in O(1): the array-backed leaf skips by
// adjusting the linear index directly.
func (c *imgCursor[T]) JumpFwd(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: n=%d", core.ErrNegativeCount, n))
	}
	c.index += n
}

func (c *imgCursor[T]) Remaining() int { return c.end - c.index - 1 }

// TrySplit carves the first half of the remaining range into a new cursor
// (the prefix) and keeps the second half (the suffix) for the receiver.
func (c *imgCursor[T]) TrySplit() core.Cursor[T] {
	r := c.Remaining()
	if r < 2 {
		return nil
	}
	half := r / 2
	prefix := &imgCursor[T]{
		img:   c.img,
		first: c.index + 1,
		index: c.index,
		end:   c.index + 1 + half,
	}
	c.first = c.index + 1 + half
	c.index = c.first - 1
	return prefix
}
