package core

import "fmt"

// Point is a mutable integer coordinate tuple implementing both halves of
// the positional contract. Every accessor in ndview carries one (or an
// equivalent) as its position state; a Point is owned exclusively by the
// object holding it and must never be shared between accessors.
type Point struct {
	pos []int
}

// NewPoint returns a Point at the origin of an n-dimensional space.
func NewPoint(n int) *Point {
	return &Point{pos: make([]int, n)}
}

// PointAt returns a Point at the given coordinates (copied).
func PointAt(coords ...int) *Point {
	p := &Point{pos: make([]int, len(coords))}
	copy(p.pos, coords)
	return p
}

// NumDimensions returns the dimensionality of the point.
func (p *Point) NumDimensions() int { return len(p.pos) }

// Position returns the coordinate along dimension d.
// Panics with ErrDimensionIndex if d is out of range.
func (p *Point) Position(d int) int {
	p.checkDim(d)
	return p.pos[d]
}

// Localize writes the current coordinates into dst.
// Panics with ErrDimensionMismatch if len(dst) != NumDimensions().
func (p *Point) Localize(dst []int) {
	p.checkLen(len(dst))
	copy(dst, p.pos)
}

// Coords returns a fresh copy of the current coordinates.
func (p *Point) Coords() []int {
	out := make([]int, len(p.pos))
	copy(out, p.pos)
	return out
}

// SetPosition sets the absolute position.
// Panics with ErrDimensionMismatch if len(coords) != NumDimensions().
func (p *Point) SetPosition(coords []int) {
	p.checkLen(len(coords))
	copy(p.pos, coords)
}

// Move adds distance to the coordinate along dimension d.
// Panics with ErrDimensionIndex if d is out of range.
func (p *Point) Move(distance, d int) {
	p.checkDim(d)
	p.pos[d] += distance
}

// MoveBy adds a relative offset vector to the position.
// Panics with ErrDimensionMismatch if len(distance) != NumDimensions().
func (p *Point) MoveBy(distance []int) {
	p.checkLen(len(distance))
	for d, dist := range distance {
		p.pos[d] += dist
	}
}

// Fwd is Move(1, d).
func (p *Point) Fwd(d int) { p.Move(1, d) }

// Bck is Move(-1, d).
func (p *Point) Bck(d int) { p.Move(-1, d) }

// Clone returns an independent Point at the same coordinates.
func (p *Point) Clone() *Point {
	return PointAt(p.pos...)
}

// String renders the point as "(x, y, ...)".
func (p *Point) String() string {
	return fmt.Sprintf("%v", p.pos)
}

func (p *Point) checkDim(d int) {
	if d < 0 || d >= len(p.pos) {
		panic(fmt.Errorf("%w: d=%d, dimensionality %d", ErrDimensionIndex, d, len(p.pos)))
	}
}

func (p *Point) checkLen(n int) {
	if n != len(p.pos) {
		panic(fmt.Errorf("%w: got %d coordinates for %d dimensions", ErrDimensionMismatch, n, len(p.pos)))
	}
}
