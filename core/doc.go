// Package core defines the fundamental contracts of ndview: intervals,
// coordinate tuples, and the accessor capabilities every container and
// view implements.
//
// What:
//
//   - Interval — an axis-aligned integer box (inclusive min/max per
//     dimension) describing the valid domain of a container or view.
//   - Point — a mutable integer coordinate tuple, the position state
//     carried by every accessor.
//   - Localizable / Positionable — the read and write halves of the
//     positional contract.
//   - RandomAccess — O(1) seek to any coordinate, returning the element
//     stored there.
//   - Cursor — ordered, restartable traversal over every coordinate of an
//     interval, with exact remaining-count accounting and range splitting
//     for parallel consumption.
//   - RandomAccessible / BoundedRandomAccessible / Iterable — the
//     capabilities a data source exposes so that views can wrap it.
//
// Why:
//
//	Containers (package img), coordinate-transforming views (package view)
//	and out-of-bounds extensions (package oob) all speak the same small
//	vocabulary defined here, so any of them can wrap any other without
//	copying a single element.
//
// Concurrency:
//
//	Intervals and the transform parameters of views are immutable after
//	construction and may be shared freely across goroutines. RandomAccess
//	and Cursor instances carry mutable position state and are single-owner:
//	create one per goroutine (they are cheap), never share one between
//	goroutines. Cursor.TrySplit produces disjoint sub-ranges whose union is
//	exactly the remaining range, so split cursors can be consumed in
//	parallel without duplicated or missing elements.
//
// Errors:
//
//	Constructors validate their inputs and return sentinel errors
//	(ErrBadInterval, ErrDimensionMismatch, ...). Per-access misuse — a
//	coordinate slice of the wrong length, a dimension index outside
//	[0, NumDimensions()) — is a programming error and panics with the same
//	sentinels wrapped. Coordinates outside an interval are NOT checked on
//	access: roaming out of bounds is legal and is given meaning only by
//	view.Extend.
package core
