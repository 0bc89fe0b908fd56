// SPDX-License-Identifier: MIT
//
// File: extend.go
// Role: the one layer that gives out-of-bounds coordinates meaning.

package view

import (
	"github.com/katalvlaran/ndview/core"
	"github.com/katalvlaran/ndview/oob"
)

// Extended wraps a bounded source so that every coordinate of n-space is
// readable: coordinates inside the source interval behave as before,
// coordinates outside are served by an out-of-bounds policy. The result is
// unbounded — Crop it to regain an interval to iterate.
type Extended[T any] struct {
	src    core.BoundedRandomAccessible[T]
	policy oob.Policy[T]
	iv     core.Interval
}

// Extend wraps src with the out-of-bounds policy built by factory.
// Returns ErrNilSource / ErrNilFactory on nil arguments.
func Extend[T any](src core.BoundedRandomAccessible[T], factory oob.Factory[T]) (*Extended[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	iv := src.Interval()
	return &Extended[T]{src: src, policy: factory(iv), iv: iv}, nil
}

// ExtendValue extends src with oob.Constant(value).
func ExtendValue[T any](src core.BoundedRandomAccessible[T], value T) (*Extended[T], error) {
	return Extend(src, oob.Constant(value))
}

// ExtendBorder extends src with oob.Border.
func ExtendBorder[T any](src core.BoundedRandomAccessible[T]) (*Extended[T], error) {
	return Extend(src, oob.Border[T]())
}

// ExtendMirrorSingle extends src with oob.MirrorSingle.
func ExtendMirrorSingle[T any](src core.BoundedRandomAccessible[T]) (*Extended[T], error) {
	return Extend(src, oob.MirrorSingle[T]())
}

// ExtendMirrorDouble extends src with oob.MirrorDouble.
func ExtendMirrorDouble[T any](src core.BoundedRandomAccessible[T]) (*Extended[T], error) {
	return Extend(src, oob.MirrorDouble[T]())
}

// ExtendPeriodic extends src with oob.Periodic.
func ExtendPeriodic[T any](src core.BoundedRandomAccessible[T]) (*Extended[T], error) {
	return Extend(src, oob.Periodic[T]())
}

// NumDimensions returns the dimensionality (unchanged by extension).
func (v *Extended[T]) NumDimensions() int { return v.iv.NumDimensions() }

// SourceInterval returns the interval of the wrapped source. The extended
// view itself is deliberately NOT Bounded: its domain is all of n-space.
func (v *Extended[T]) SourceInterval() core.Interval { return v.iv }

// RandomAccess returns an accessor at the source origin. Reads at out-of-bounds
// positions are remapped or substituted per the policy; writes at
// positions the policy cannot map (Constant outside the source) are
// discarded.
func (v *Extended[T]) RandomAccess() core.RandomAccess[T] {
	a := &extendAccess[T]{
		Point:  core.NewPoint(v.iv.NumDimensions()),
		inner:  v.src.RandomAccess(),
		policy: v.policy,
		tmp:    make([]int, v.iv.NumDimensions()),
	}
	a.SetPosition(v.iv.MinCoords())
	return a
}

// extendAccess keeps its own position (a Point) because the outer
// coordinate can stray arbitrarily far from anything the inner accessor
// may hold. Reads and writes map the whole coordinate through the policy
// and reposition the inner accessor.
type extendAccess[T any] struct {
	*core.Point
	inner  core.RandomAccess[T]
	policy oob.Policy[T]
	tmp    []int
}

func (a *extendAccess[T]) Get() T {
	if !a.mapPosition() {
		return a.policy.Value()
	}
	a.inner.SetPosition(a.tmp)
	return a.inner.Get()
}

func (a *extendAccess[T]) Set(v T) {
	if !a.mapPosition() {
		return // no in-bounds sample can hold the value
	}
	a.inner.SetPosition(a.tmp)
	a.inner.Set(v)
}

func (a *extendAccess[T]) Copy() core.RandomAccess[T] {
	return &extendAccess[T]{
		Point:  a.Point.Clone(),
		inner:  a.inner.Copy(),
		policy: a.policy,
		tmp:    make([]int, len(a.tmp)),
	}
}

// mapPosition maps the current outer position into tmp, reporting whether
// every axis found an in-bounds coordinate.
func (a *extendAccess[T]) mapPosition() bool {
	for d := range a.tmp {
		m, ok := a.policy.MapCoord(a.Point.Position(d), d)
		if !ok {
			return false
		}
		a.tmp[d] = m
	}
	return true
}
