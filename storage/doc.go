// Package storage defines the linear-offset backend boundary of ndview and
// two reference backends.
//
// What:
//
//   - Access — the entire contract a storage backend must satisfy: get and
//     set at a linear offset, plus its length. The access core never looks
//     past this interface; dimensionality and strides live in package img.
//   - Slice — a zero-copy wrapper around an ordinary Go slice.
//   - Mmap — a file-backed flat array via memory mapping, for element types
//     that contain no pointers.
//
// Why:
//
//	Keeping the backend boundary this small lets containers, views, and
//	cursors stay agnostic of where pixels actually live: in a heap slice,
//	in a mapped file, or in anything else implementing Access.
//
// Errors:
//
//   - ErrZeroSizeElement: the element type occupies zero bytes and cannot
//     be mapped.
//   - ErrBadLength: a negative element count.
//   - ErrSizeMismatch: an existing file's size disagrees with the
//     requested element count.
//
// Out-of-range linear offsets panic via the standard slice bounds check;
// backends perform no additional checking.
package storage
