// Package oob defines out-of-bounds policies: the rules giving meaning to
// coordinates that fall outside a source interval. Policies are consumed
// by view.Extend, which is the single layer of ndview that remaps or
// substitutes instead of failing.
//
// What:
//
//   - Factory — binds a policy kind to a concrete source interval, once
//     per accessor.
//   - Policy — the bound rule: a pure per-axis coordinate map plus a
//     substitute value for coordinates no in-bounds sample can serve.
//   - Constant, Border, MirrorSingle, MirrorDouble, Periodic — the policy
//     kinds.
//
// Semantics:
//
//   - Constant(v): outside coordinates read v; writes outside are
//     discarded. No coordinate remapping.
//   - Border: clamp each coordinate to the nearest bound (the boundary
//     sample repeats outward forever).
//   - MirrorSingle: reflect across the boundary WITHOUT repeating the
//     boundary sample; the effective period along an axis of extent s is
//     2·(s-1). For a 0-based axis of extent L, coordinate L maps to L-2.
//   - MirrorDouble: reflect across the boundary repeating the boundary
//     sample; period 2·s. Coordinate L maps to L-1.
//   - Periodic: wrap with a negative-safe modulo (remainder always
//     non-negative); period s.
//
// Determinism:
//
//	Policies are stateless given their interval: the same coordinate
//	always maps to the same result; bound policies may be shared by any
//	number of accessors.
//
// Edge cases:
//
//	Along an axis of extent 1 every reflective/periodic map collapses to
//	the single sample. Along an empty axis (extent 0) no in-bounds sample
//	exists: MapCoord reports ok=false and reads fall back to Value().
package oob
