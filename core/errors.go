package core

import "errors"

// Sentinel errors shared by all ndview packages. Constructors return them
// wrapped; per-access misuse panics with them wrapped (see doc.go).
var (
	// ErrDimensionMismatch indicates a coordinate slice whose length differs
	// from the accessor's dimensionality.
	ErrDimensionMismatch = errors.New("ndview: coordinate length does not match dimensionality")

	// ErrDimensionIndex indicates a dimension index outside [0, NumDimensions()).
	ErrDimensionIndex = errors.New("ndview: dimension index out of range")

	// ErrIndexOutOfRange indicates a sub-index outside a fixed valid range,
	// e.g. a composite element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("ndview: index out of range")

	// ErrIncompatibleTransform indicates a view constructed over a source of
	// incompatible dimensionality or shape.
	ErrIncompatibleTransform = errors.New("ndview: transform incompatible with source")

	// ErrBadInterval indicates per-dimension bounds violating min <= max+1,
	// or an interval of zero dimensions where one is required.
	ErrBadInterval = errors.New("ndview: malformed interval bounds")

	// ErrNegativeCount indicates a negative element count where only forward
	// movement is defined (Cursor.JumpFwd).
	ErrNegativeCount = errors.New("ndview: negative element count")
)
