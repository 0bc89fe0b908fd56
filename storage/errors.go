package storage

import "errors"

var (
	// ErrZeroSizeElement indicates an element type occupying zero bytes.
	ErrZeroSizeElement = errors.New("storage: element type must occupy at least one byte")

	// ErrBadLength indicates a negative element count.
	ErrBadLength = errors.New("storage: element count must be non-negative")

	// ErrSizeMismatch indicates an existing file whose size does not match
	// the requested element count.
	ErrSizeMismatch = errors.New("storage: file size does not match requested length")
)
