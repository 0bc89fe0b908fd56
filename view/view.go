// Package-internal helpers shared by the access wrappers: the panic side
// of the error policy (see doc.go).

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/core"
)

// checkDim panics when a dimension index is outside [0, n).
func checkDim(d, n int) {
	if d < 0 || d >= n {
		panic(fmt.Errorf("%w: d=%d, dimensionality %d", core.ErrDimensionIndex, d, n))
	}
}

// checkLen panics when a coordinate slice length differs from n.
func checkLen(got, n int) {
	if got != n {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", core.ErrDimensionMismatch, got, n))
	}
}

// checkAxis validates an axis at construction time, as an error.
func checkAxis(axis, n int) error {
	if axis < 0 || axis >= n {
		return fmt.Errorf("%w: axis=%d, dimensionality %d", core.ErrDimensionIndex, axis, n)
	}
	return nil
}
