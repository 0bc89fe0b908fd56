package img

import "errors"

var (
	// ErrBadDimensions indicates a dimensionless image or an extent < 1.
	ErrBadDimensions = errors.New("img: need at least one dimension, every extent >= 1")

	// ErrLengthMismatch indicates backing data whose length differs from
	// the product of the requested extents.
	ErrLengthMismatch = errors.New("img: data length does not match dimensions")
)
