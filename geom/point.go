package geom

// Point is an integer (x, y) location in internal units.
type Point struct {
	X, Y int64
}

// Vector is an integer displacement; arithmetically identical to Point but
// kept as a distinct name at call sites that mean "direction" rather than
// "location" (the same convention the original C++ source uses for
// IntPoint vs IntVector).
type Vector = Point

// Valid reports whether both coordinates lie within [-CritInt, CritInt].
func (p Point) Valid() bool {
	return p.X >= -CritInt && p.X <= CritInt && p.Y >= -CritInt && p.Y <= CritInt
}

// Add returns p + v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p - q as a displacement vector.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns v scaled by an integer factor.
func (v Vector) Scale(k int64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Side is the result of a side-of-line predicate.
type Side int

const (
	// Collinear means the point lies exactly on the line.
	Collinear Side = iota
	// Left means the point is to the left of the directed line.
	Left
	// Right means the point is to the right of the directed line.
	Right
)

// String renders the Side for diagnostics.
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Collinear"
	}
}

// Negate flips Left/Right and leaves Collinear unchanged.
func (s Side) Negate() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Collinear
	}
}

// Cross returns the 2-D cross product v.X*w.Y - v.Y*w.X. Both operands must
// be within CritInt for the product-plus-addition headroom guaranteed by
// geom.CritInt to hold; callers that accept external coordinates should call
// Validate first.
func Cross(v, w Vector) int64 {
	return v.X*w.Y - v.Y*w.X
}

// SideOf returns the sign of the cross product w.X*v.Y - w.Y*v.X: Left when
// v lies counter-clockwise from w, Right when clockwise, Collinear when
// parallel.
func SideOf(v, w Vector) Side {
	c := w.X*v.Y - w.Y*v.X
	switch {
	case c > 0:
		return Left
	case c < 0:
		return Right
	default:
		return Collinear
	}
}

// Dot returns the dot product of two vectors.
func Dot(v, w Vector) int64 {
	return v.X*w.X + v.Y*w.Y
}

// AbsInt64 returns the absolute value of x.
func AbsInt64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|, the rectilinear distance
// used by the ripup cost, section entry-point choice, and the straightening
// pass's length comparison, none of which need a true Euclidean length.
func ManhattanDistance(p, q Point) int64 {
	return AbsInt64(p.X-q.X) + AbsInt64(p.Y-q.Y)
}
