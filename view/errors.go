package view

import "errors"

var (
	// ErrNilSource indicates a view constructed over a nil source.
	ErrNilSource = errors.New("view: nil source")

	// ErrNilFactory indicates Extend called without an out-of-bounds factory.
	ErrNilFactory = errors.New("view: nil out-of-bounds factory")

	// ErrBadStep indicates a subsampling step < 1.
	ErrBadStep = errors.New("view: subsampling step must be >= 1")
)
