package geom

// Box is an axis-aligned rectangle [Lo.X, Hi.X] x [Lo.Y, Hi.Y]. An empty box
// is canonicalized so that Lo.X > Hi.X, which lets every method below treat
// emptiness uniformly without a separate boolean flag.
type Box struct {
	Lo, Hi Point
}

// EmptyBox returns the canonical empty box.
func EmptyBox() Box {
	return Box{Lo: Point{X: CritInt, Y: CritInt}, Hi: Point{X: -CritInt, Y: -CritInt}}
}

// BoxFromPoint returns the degenerate box containing exactly p.
func BoxFromPoint(p Point) Box {
	return Box{Lo: p, Hi: p}
}

// BoxFromPoints returns the smallest box containing both a and b.
func BoxFromPoints(a, b Point) Box {
	lo := Point{X: min64(a.X, b.X), Y: min64(a.Y, b.Y)}
	hi := Point{X: max64(a.X, b.X), Y: max64(a.Y, b.Y)}

	return Box{Lo: lo, Hi: hi}
}

// IsEmpty reports whether the box is the canonical empty box.
func (b Box) IsEmpty() bool {
	return b.Lo.X > b.Hi.X || b.Lo.Y > b.Hi.Y
}

// Valid reports whether both corners are within the legal coordinate range.
func (b Box) Valid() bool {
	return b.Lo.Valid() && b.Hi.Valid()
}

// Width returns Hi.X - Lo.X, or 0 for an empty box.
func (b Box) Width() int64 {
	if b.IsEmpty() {
		return 0
	}

	return b.Hi.X - b.Lo.X
}

// Height returns Hi.Y - Lo.Y, or 0 for an empty box.
func (b Box) Height() int64 {
	if b.IsEmpty() {
		return 0
	}

	return b.Hi.Y - b.Lo.Y
}

// Area returns width*height as a non-negative int64, or 0 if empty.
func (b Box) Area() int64 {
	if b.IsEmpty() {
		return 0
	}

	return b.Width() * b.Height()
}

// Center returns the midpoint of the box. Odd coordinate sums round toward
// zero (integer division), which keeps the result an exact integer (callers needing sub-unit
// precision should not rely on Center for geometry, only for heuristics).
func (b Box) Center() Point {
	return Point{X: (b.Lo.X + b.Hi.X) / 2, Y: (b.Lo.Y + b.Hi.Y) / 2}
}

// Contains reports whether p lies within the closed box.
func (b Box) Contains(p Point) bool {
	if b.IsEmpty() {
		return false
	}

	return p.X >= b.Lo.X && p.X <= b.Hi.X && p.Y >= b.Lo.Y && p.Y <= b.Hi.Y
}

// ContainsBox reports whether b fully contains other.
func (b Box) ContainsBox(other Box) bool {
	if other.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}

	return other.Lo.X >= b.Lo.X && other.Lo.Y >= b.Lo.Y &&
		other.Hi.X <= b.Hi.X && other.Hi.Y <= b.Hi.Y
}

// Intersects reports whether b and other overlap (sharing an edge counts as
// intersecting, consistent with the closed-interval semantics used by
// tileshape's 1-D door detection).
func (b Box) Intersects(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}

	return !(other.Lo.X > b.Hi.X || other.Hi.X < b.Lo.X ||
		other.Lo.Y > b.Hi.Y || other.Hi.Y < b.Lo.Y)
}

// Union returns the smallest box containing both b and other. This is the
// operation the spatial index's bounding-box tree uses to propagate updates
// toward the root on every insert.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}

	return Box{
		Lo: Point{X: min64(b.Lo.X, other.Lo.X), Y: min64(b.Lo.Y, other.Lo.Y)},
		Hi: Point{X: max64(b.Hi.X, other.Hi.X), Y: max64(b.Hi.Y, other.Hi.Y)},
	}
}

// Intersection returns the overlapping region of b and other, or the
// canonical empty box if they do not overlap.
func (b Box) Intersection(other Box) Box {
	result := Box{
		Lo: Point{X: max64(b.Lo.X, other.Lo.X), Y: max64(b.Lo.Y, other.Lo.Y)},
		Hi: Point{X: min64(b.Hi.X, other.Hi.X), Y: min64(b.Hi.Y, other.Hi.Y)},
	}
	if result.IsEmpty() {
		return EmptyBox()
	}

	return result
}

// Expand grows the box by offset in all four directions (a Minkowski sum
// with a square of half-width offset); a negative offset shrinks it and may
// produce an empty box.
func (b Box) Expand(offset int64) Box {
	if b.IsEmpty() {
		return b
	}

	return Box{
		Lo: Point{X: b.Lo.X - offset, Y: b.Lo.Y - offset},
		Hi: Point{X: b.Hi.X + offset, Y: b.Hi.Y + offset},
	}
}

// Translate shifts the box by v.
func (b Box) Translate(v Vector) Box {
	if b.IsEmpty() {
		return b
	}

	return Box{Lo: b.Lo.Add(v), Hi: b.Hi.Add(v)}
}

// AreaIncrease returns the area that Union(other) would add beyond b's own
// area; the spatial index's insert walk descends into whichever child
// minimizes this value.
func (b Box) AreaIncrease(other Box) int64 {
	return b.Union(other).Area() - b.Area()
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
