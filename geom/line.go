package geom

// Line is a directed line through two points, represented internally as the
// half-plane equation a*x + b*y + c >= 0 that is true on the left side of
// the direction from From to To. This is the representation tile shapes cut
// against (§4.4's intersection_with_halfplane) and that border edges are
// enumerated as.
type Line struct {
	From, To Point
	a, b, c  int64
}

// NewLine builds the directed line from 'from' to 'to'. Degenerate lines
// (from == to) are permitted; every predicate against them returns
// Collinear/zero, which is the conservative, never-cuts-anything answer.
func NewLine(from, to Point) Line {
	dx := to.X - from.X
	dy := to.Y - from.Y
	// The left half-plane of the directed segment (from, to) is
	// { (x,y) : dy*(from.X - x) - dx*(from.Y - y) >= 0 } rearranged into
	// a*x + b*y + c >= 0 form.
	a := -dy
	b := dx
	c := dy*from.X - dx*from.Y

	return Line{From: from, To: to, a: a, b: b, c: c}
}

// Eval returns a*p.X + b*p.Y + c, the signed value whose sign decides which
// side of the line p falls on.
func (l Line) Eval(p Point) int64 {
	return l.a*p.X + l.b*p.Y + l.c
}

// SideOfPoint classifies p relative to the directed line.
func (l Line) SideOfPoint(p Point) Side {
	v := l.Eval(p)
	switch {
	case v > 0:
		return Left
	case v < 0:
		return Right
	default:
		return Collinear
	}
}

// Reversed returns the line with From/To swapped, i.e. the opposite
// half-plane of the same boundary edge.
func (l Line) Reversed() Line {
	return NewLine(l.To, l.From)
}

// Direction returns the displacement vector from From to To.
func (l Line) Direction() Vector {
	return l.To.Sub(l.From)
}
