// SPDX-License-Identifier: MIT
//
// File: img.go
// Role: flat row-major container and its constructors.

package img

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndview/core"
	"github.com/katalvlaran/ndview/storage"
)

// Img is a flat n-dimensional container: extents, precomputed strides
// (dimension 0 fastest-varying), and a storage backend holding the
// elements at linear offsets. Interval min is fixed at the origin; use
// view.Translate for shifted domains.
//
// The struct itself is immutable after construction; only element values
// change, through accessors.
type Img[T any] struct {
	dims    []int
	strides []int
	iv      core.Interval
	acc     storage.Access[T]
}

// New allocates a zero-filled image with the given extents.
// Returns ErrBadDimensions if dims is empty or any extent is < 1.
// Complexity: O(product of extents) for the allocation.
func New[T any](dims ...int) (*Img[T], error) {
	n, err := checkDims(dims)
	if err != nil {
		return nil, err
	}
	acc, err := storage.NewSlice[T](n)
	if err != nil {
		return nil, err
	}
	return build(acc, dims)
}

// FromSlice adopts data zero-copy as the pixels of an image with the given
// extents, linear order matching the scan order (dimension 0 fastest).
// Returns ErrLengthMismatch if len(data) differs from the extent product.
func FromSlice[T any](data []T, dims ...int) (*Img[T], error) {
	return FromAccess[T](storage.WrapSlice(data), dims...)
}

// FromAccess builds an image over an arbitrary storage backend, e.g. a
// storage.Mmap. Returns ErrLengthMismatch if acc.Len() differs from the
// extent product.
func FromAccess[T any](acc storage.Access[T], dims ...int) (*Img[T], error) {
	n, err := checkDims(dims)
	if err != nil {
		return nil, err
	}
	if acc.Len() != n {
		return nil, fmt.Errorf("%w: have %d elements, dimensions %v need %d", ErrLengthMismatch, acc.Len(), dims, n)
	}
	return build(acc, dims)
}

func checkDims(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, fmt.Errorf("%w: got none", ErrBadDimensions)
	}
	n := 1
	for d, size := range dims {
		if size < 1 {
			return 0, fmt.Errorf("%w: dimension %d has extent %d", ErrBadDimensions, d, size)
		}
		n *= size
	}
	return n, nil
}

func build[T any](acc storage.Access[T], dims []int) (*Img[T], error) {
	iv, err := core.NewZeroMin(dims...)
	if err != nil {
		return nil, err
	}
	im := &Img[T]{
		dims:    append([]int(nil), dims...),
		strides: make([]int, len(dims)),
		iv:      iv,
		acc:     acc,
	}
	stride := 1
	for d, size := range im.dims {
		im.strides[d] = stride
		stride *= size
	}
	return im, nil
}

// NumDimensions returns the dimensionality of the image.
func (im *Img[T]) NumDimensions() int { return len(im.dims) }

// Interval returns the image domain: 0..dims[d]-1 per dimension.
func (im *Img[T]) Interval() core.Interval { return im.iv }

// Size returns the extent along dimension d.
// Panics with core.ErrDimensionIndex if d is out of range.
func (im *Img[T]) Size(d int) int {
	im.checkDim(d)
	return im.dims[d]
}

// NumElements returns the total number of pixels.
func (im *Img[T]) NumElements() int { return im.acc.Len() }

// RandomAccess returns a fresh O(1) accessor positioned at the origin.
func (im *Img[T]) RandomAccess() core.RandomAccess[T] {
	return &imgAccess[T]{img: im, pos: make([]int, len(im.dims))}
}

// Cursor returns a fresh scan-order cursor, one-before-first.
func (im *Img[T]) Cursor() core.Cursor[T] {
	return &imgCursor[T]{img: im, index: -1, end: im.acc.Len()}
}

// At reads the pixel at the given coordinates; a convenience around
// RandomAccess for one-off access.
// Panics with core.ErrDimensionMismatch on a wrong coordinate count.
func (im *Img[T]) At(coords ...int) T {
	return im.acc.At(im.offsetOf(coords))
}

// SetAt writes the pixel at the given coordinates.
// Panics with core.ErrDimensionMismatch on a wrong coordinate count.
func (im *Img[T]) SetAt(v T, coords ...int) {
	im.acc.SetAt(im.offsetOf(coords), v)
}

// Range iterates over (coordinates, value) pairs in scan order (dimension
// 0 fastest). The yielded coordinate slice is owned by the iterator: do
// not retain or mutate it across iterations.
func (im *Img[T]) Range() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		coords := make([]int, len(im.dims))
		n := im.acc.Len()
		for i := 0; i < n; i++ {
			if !yield(coords, im.acc.At(i)) {
				return
			}
			// Advance with carry propagation, dimension 0 fastest.
			for d := 0; d < len(coords); d++ {
				coords[d]++
				if coords[d] < im.dims[d] {
					break
				}
				coords[d] = 0
			}
		}
	}
}

func (im *Img[T]) offsetOf(coords []int) int {
	if len(coords) != len(im.dims) {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", core.ErrDimensionMismatch, len(coords), len(im.dims)))
	}
	off := 0
	for d, x := range coords {
		off += x * im.strides[d]
	}
	return off
}

func (im *Img[T]) checkDim(d int) {
	if d < 0 || d >= len(im.dims) {
		panic(fmt.Errorf("%w: d=%d, dimensionality %d", core.ErrDimensionIndex, d, len(im.dims)))
	}
}
