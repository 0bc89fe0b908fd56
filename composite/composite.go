package composite

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// Composite is a fixed-length vector-valued element: sub-index i reads or
// writes the sample at min+i along one designated axis of the underlying
// accessor. The accessor is owned by whoever handed it to New — typically
// a collapse view, which keeps the remaining axes positioned and lets the
// Composite drive only the folded one.
type Composite[T any] struct {
	ra     core.RandomAccess[T]
	axis   int
	min    int
	length int
}

// New binds a Composite of the given length to ra along axis, sub-index 0
// mapping to coordinate min. Returns core.ErrDimensionIndex if axis is
// outside ra's dimensionality, core.ErrIndexOutOfRange if length < 1.
func New[T any](ra core.RandomAccess[T], axis, min, length int) (*Composite[T], error) {
	if axis < 0 || axis >= ra.NumDimensions() {
		return nil, fmt.Errorf("%w: axis=%d, dimensionality %d", core.ErrDimensionIndex, axis, ra.NumDimensions())
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: length=%d", core.ErrIndexOutOfRange, length)
	}
	return &Composite[T]{ra: ra, axis: axis, min: min, length: length}, nil
}

// Len returns the fixed vector length.
func (c *Composite[T]) Len() int { return c.length }

// Get returns the sample at sub-index i. Each call re-seeks the
// underlying accessor; nothing is cached.
// Panics with core.ErrIndexOutOfRange if i is outside [0, Len()).
func (c *Composite[T]) Get(i int) T {
	c.seek(i)
	return c.ra.Get()
}

// Set stores v at sub-index i.
// Panics with core.ErrIndexOutOfRange if i is outside [0, Len()).
func (c *Composite[T]) Set(i int, v T) {
	c.seek(i)
	c.ra.Set(v)
}

// Values copies the whole vector out into a fresh slice.
// Complexity: O(Len()).
func (c *Composite[T]) Values() []T {
	out := make([]T, c.length)
	for i := range out {
		out[i] = c.Get(i)
	}
	return out
}

func (c *Composite[T]) seek(i int) {
	if i < 0 || i >= c.length {
		panic(fmt.Errorf("%w: i=%d, length %d", core.ErrIndexOutOfRange, i, c.length))
	}
	// Reposition only the folded axis, relative to wherever the owner of
	// the accessor left it.
	c.ra.Move(c.min+i-c.ra.Position(c.axis), c.axis)
}
