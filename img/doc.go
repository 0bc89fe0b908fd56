// Package img provides the flat n-dimensional container of ndview: pixel
// data stored at linear offsets in a storage backend, addressed through
// row-major strides with dimension 0 varying fastest.
//
// What:
//
//   - Img — dimensions, strides, and a storage.Access backend. Implements
//     core.BoundedRandomAccessible and core.Iterable, so every transform in
//     package view can wrap it directly.
//   - New / FromSlice / FromAccess — allocate fresh storage, adopt a caller
//     slice zero-copy, or sit on any backend (including storage.Mmap).
//   - Range — an iter.Seq2 over (coordinates, value) in scan order, for
//     plain for-range consumption without a Cursor.
//
// Why:
//
//	Img is the leaf every accessor chain bottoms out in: the one place
//	where coordinates become a single linear offset. Its RandomAccess
//	maintains that offset incrementally, so every move is O(1), and its
//	Cursor walks the backend linearly, giving O(1) JumpFwd and exact
//	range splitting.
//
// Complexity:
//
//   - RandomAccess Move/Fwd/Bck/Get/Set: O(1). SetPosition: O(n).
//   - Cursor Next/Fwd/JumpFwd: O(1); Localize: O(n).
//
// Errors:
//
//   - ErrBadDimensions: no dimensions, or an extent < 1.
//   - ErrLengthMismatch: backing data length != product of extents.
//
// Accessing coordinates outside the interval is not checked here and hits
// the backend's bounds check (or silently aliases a neighbouring row for
// offsets that stay in range); wrap the image with view.Extend to give
// out-of-bounds coordinates defined meaning.
package img
