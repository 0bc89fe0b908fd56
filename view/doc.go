// Package view implements the coordinate-transforming wrappers of ndview:
// each view wraps an inner source and remaps coordinates (and sometimes
// dimensionality) on every access, so pixel data is reinterpreted without
// copying a single element.
//
// What:
//
//   - Translate, ZeroMin — shift the domain by an offset vector.
//   - Permute, MoveAxis, Rotate — reorder axes (Rotate adds a flip for a
//     90° in-plane rotation).
//   - Flip — mirror one axis within the source bounds.
//   - Crop — restrict the iteration domain without touching coordinates.
//   - Extend — give out-of-bounds coordinates meaning via an oob.Factory;
//     the result is unbounded, Crop re-bounds it.
//   - Subsample — keep every k-th sample per dimension.
//   - HyperSlice — fix one axis at a coordinate (−1 dimension).
//   - AddDimension — append an ignored axis (+1 dimension).
//   - Collapse — fold the last axis into composite.Composite elements
//     (−1 dimension); Inflate is its exact inverse (+1 dimension, appended
//     last); Interleave is Inflate with the new axis moved to dimension 0,
//     changing scan order but not values.
//   - NewCursor — a scan-order cursor over any RandomAccessible restricted
//     to an interval, with exact remaining counts and range splitting.
//
// Why:
//
//	Transforms compose associatively: wrapping a view in another view
//	yields a view, and an accessor obtained from the outermost layer walks
//	the whole chain on every positional call. The chain is built once,
//	immutably; accessors are cheap and single-owner (see core doc).
//
// Errors:
//
//	Constructors fail fast: a nil source is ErrNilSource, a wrong-length
//	parameter vector wraps core.ErrDimensionMismatch, a bad axis wraps
//	core.ErrDimensionIndex, and a source of unusable shape (collapsing a
//	0-dimensional view, inflating an empty one) wraps
//	core.ErrIncompatibleTransform.
//	After construction no per-access bounds checks are performed — except
//	by Extend, whose entire purpose is to remap out-of-range coordinates.
//
// Invariants (exercised by the package tests):
//
//   - Inflate(Collapse(X)) equals X element-for-element.
//   - Interleave(Collapse(MoveAxis(X, 0, last))) restores X in its
//     original scan order.
//   - A cursor over a view visits every coordinate of its interval
//     exactly once; TrySplit partitions the remainder exactly.
package view
