// Package composite provides the vector-valued element produced by
// view.Collapse: a fixed-length window over consecutive samples along one
// axis of an underlying accessor.
//
// What:
//
//   - Composite — Get(i)/Set(i, v) by sub-index, Len(), Values(). It owns
//     no storage: every call repositions the underlying RandomAccess to
//     base + i along the designated axis and delegates.
//
// Why:
//
//	Collapsing the channel axis of a (x, y, channel) image yields a 2-D
//	image of per-pixel channel vectors without copying a sample; the
//	Composite is that vector.
//
// Trade-off:
//
//	A Composite caches nothing. Every Get re-seeks the accessor: O(1) per
//	call, but repeated reads of the same sub-index pay the seek each time.
//
// Errors:
//
//	Sub-indices outside [0, Len()) panic with core.ErrIndexOutOfRange.
package composite
