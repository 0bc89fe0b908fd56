// Package ndview is an n-dimensional image data-access library: it defines
// how to address, traverse, and transform array-like pixel data of
// arbitrary dimensionality and element type — without copying it.
//
// 🚀 What is ndview?
//
//	A pure in-process access layer built from composable pieces:
//		• Core contracts: Interval, Point, RandomAccess, Cursor
//		• Containers: flat row-major images over pluggable storage
//		  (heap slices or memory-mapped files)
//		• Views: translate, permute, rotate, flip, crop, subsample,
//		  hyperslice, extend, collapse/inflate/interleave — every one a
//		  coordinate-remapping wrapper, never a buffer
//		• Out-of-bounds policies: constant, border, mirror (single/double),
//		  periodic
//		• Composites: vector-valued pixels folded out of one axis
//
// ✨ Why choose ndview?
//
//   - Zero-copy by construction — views compose functions, not buffers
//   - O(1) positional access through arbitrarily deep transform chains
//   - Exact iteration accounting — cursors split into disjoint ranges for
//     parallel traversal with no duplicate and no missing element
//   - Element-type agnostic — generics end to end, no boxing
//
// Everything is organized under six subpackages:
//
//	core/      — intervals, points, accessor and cursor contracts
//	storage/   — linear-offset backends: slice, mmap
//	img/       — the flat container every accessor chain bottoms out in
//	view/      — the transform layer (the heart of the library)
//	oob/       — out-of-bounds policies consumed by view.Extend
//	composite/ — fixed-length vector elements produced by view.Collapse
//
// Quick ASCII example:
//
//	img.FromSlice(pixels, 640, 480)        // a 2-D image over your slice
//	  └─ view.ExtendMirrorSingle(...)      // reflect beyond the edges
//	       └─ view.Crop(..., roi)          // re-bound to a region
//	            └─ Cursor()                // visit it, in scan order
//
// Dive into the per-package docs for contracts, complexity, and edge-case
// behavior; every invariant stated there is exercised in the test suites.
//
//	go get github.com/katalvlaran/ndview
package ndview
