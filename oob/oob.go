// SPDX-License-Identifier: MIT
//
// File: oob.go
// Role: out-of-bounds policy kinds and their coordinate maps.

package oob

import "github.com/katalvlaran/ndview/core"

// Policy is an out-of-bounds rule bound to a source interval.
type Policy[T any] interface {
	// MapCoord maps coordinate x along dimension d to an in-bounds
	// coordinate. ok=false means no in-bounds sample can serve x and the
	// caller must substitute Value() on reads (and discard writes).
	// In-bounds x always maps to itself.
	MapCoord(x, d int) (mapped int, ok bool)

	// Value returns the substitute for unmappable coordinates. The zero
	// element for every kind except Constant.
	Value() T
}

// Factory binds a policy kind to a concrete source interval. view.Extend
// calls it once per extended source.
type Factory[T any] func(iv core.Interval) Policy[T]

// Constant returns a factory for the fixed-value policy: any outside
// coordinate reads value, writes outside the interval are discarded.
func Constant[T any](value T) Factory[T] {
	return func(iv core.Interval) Policy[T] {
		return &constant[T]{iv: iv, value: value}
	}
}

// Border returns a factory for the clamp policy: each coordinate is moved
// to the nearest bound of its axis.
func Border[T any]() Factory[T] {
	return func(iv core.Interval) Policy[T] {
		return &border[T]{iv: iv}
	}
}

// MirrorSingle returns a factory for reflection that does not repeat the
// boundary sample (period 2·(size-1) per axis).
func MirrorSingle[T any]() Factory[T] {
	return func(iv core.Interval) Policy[T] {
		return &mirror[T]{iv: iv, double: false}
	}
}

// MirrorDouble returns a factory for reflection that repeats the boundary
// sample (period 2·size per axis).
func MirrorDouble[T any]() Factory[T] {
	return func(iv core.Interval) Policy[T] {
		return &mirror[T]{iv: iv, double: true}
	}
}

// Periodic returns a factory for the wrap-around policy (negative-safe
// modulo the axis extent).
func Periodic[T any]() Factory[T] {
	return func(iv core.Interval) Policy[T] {
		return &periodic[T]{iv: iv}
	}
}

type constant[T any] struct {
	iv    core.Interval
	value T
}

func (c *constant[T]) MapCoord(x, d int) (int, bool) {
	if x < c.iv.Min(d) || x > c.iv.Max(d) {
		return x, false
	}
	return x, true
}

func (c *constant[T]) Value() T { return c.value }

type border[T any] struct {
	iv core.Interval
}

func (b *border[T]) MapCoord(x, d int) (int, bool) {
	min, max := b.iv.Min(d), b.iv.Max(d)
	if min > max {
		return x, false
	}
	if x < min {
		return min, true
	}
	if x > max {
		return max, true
	}
	return x, true
}

func (b *border[T]) Value() (zero T) { return }

type mirror[T any] struct {
	iv     core.Interval
	double bool
}

func (m *mirror[T]) MapCoord(x, d int) (int, bool) {
	min, max := m.iv.Min(d), m.iv.Max(d)
	size := max - min + 1
	switch {
	case size < 1:
		return x, false
	case size == 1:
		return min, true
	}
	rel := x - min
	if m.double {
		// Boundary sample repeated: ... 1 0 | 0 1 2 | 2 1 ...
		period := 2 * size
		rel = ((rel % period) + period) % period
		if rel >= size {
			rel = period - 1 - rel
		}
	} else {
		// Boundary sample not repeated: ... 2 1 | 0 1 2 | 1 0 ...
		period := 2 * (size - 1)
		rel = ((rel % period) + period) % period
		if rel >= size {
			rel = period - rel
		}
	}
	return min + rel, true
}

func (m *mirror[T]) Value() (zero T) { return }

type periodic[T any] struct {
	iv core.Interval
}

func (p *periodic[T]) MapCoord(x, d int) (int, bool) {
	min, max := p.iv.Min(d), p.iv.Max(d)
	size := max - min + 1
	if size < 1 {
		return x, false
	}
	rel := ((x-min)%size + size) % size
	return min + rel, true
}

func (p *periodic[T]) Value() (zero T) { return }
