package geom

import "math"

// Circle is an integer-centered circle with an integer radius.
type Circle struct {
	Center Point
	Radius int64
}

// BoundingBox returns the axis-aligned box tightly enclosing the circle.
func (c Circle) BoundingBox() Box {
	return Box{
		Lo: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Hi: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

// Contains reports whether p lies within (or on) the circle.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)

	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

// EuclideanDistance returns the bounded-precision (float64) Euclidean
// distance between two points. It is used only where an exact integer
// answer is not required by an invariant (airline ordering of connections,
// CircleDistance's center-to-center gap) - never inside an exact containment or
// side-of-line predicate, which stay integer-exact.
func EuclideanDistance(p, q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// CircleDistance returns the edge-to-edge gap between two circles: negative
// or zero when they overlap, positive otherwise.
func CircleDistance(a, b Circle) float64 {
	centerDist := EuclideanDistance(a.Center, b.Center)

	return centerDist - float64(a.Radius+b.Radius)
}
