package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// Cropped restricts the iteration domain of a source to an explicit
// interval. Coordinates are not remapped: accessors may still roam outside
// the crop (and outside the source), exactly as they could on the source.
type Cropped[T any] struct {
	src core.RandomAccessible[T]
	iv  core.Interval
}

// Crop bounds src to iv. The source may itself be unbounded (an Extend),
// which is the canonical way to re-bound an extended image; iv may also
// reach outside a bounded source, in which case reading those coordinates
// has whatever meaning the source gives them.
// Returns ErrNilSource for a nil source, core.ErrDimensionMismatch if iv's
// dimensionality differs from the source's.
func Crop[T any](src core.RandomAccessible[T], iv core.Interval) (*Cropped[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if iv.NumDimensions() != src.NumDimensions() {
		return nil, fmt.Errorf("%w: interval has %d dimensions, source %d", core.ErrDimensionMismatch, iv.NumDimensions(), src.NumDimensions())
	}
	return &Cropped[T]{src: src, iv: iv}, nil
}

// NumDimensions returns the dimensionality (unchanged by cropping).
func (v *Cropped[T]) NumDimensions() int { return v.iv.NumDimensions() }

// Interval returns the crop bounds.
func (v *Cropped[T]) Interval() core.Interval { return v.iv }

// RandomAccess returns an accessor of the source, positioned at the crop
// origin: the coordinate map of a crop is the identity.
func (v *Cropped[T]) RandomAccess() core.RandomAccess[T] {
	ra := v.src.RandomAccess()
	ra.SetPosition(v.iv.MinCoords())
	return ra
}

// Cursor returns a scan-order cursor over the crop bounds only.
func (v *Cropped[T]) Cursor() core.Cursor[T] { return NewCursor[T](v.src, v.iv) }
