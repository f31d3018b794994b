package tileshape

import (
	"fmt"

	"github.com/tracequest/tracequest/geom"
)

// NewPolygon builds a Tile from a vertex list, removing duplicate and
// collinear vertices and normalizing to counter-clockwise order. Fewer than
// 3 surviving vertices is ErrInvalidPolygon.
func NewPolygon(vertices []geom.Point) (Tile, error) {
	cleaned := cleanupVertices(vertices)
	if len(cleaned) < 3 {
		return Tile{}, fmt.Errorf("%w: %d vertices after cleanup", ErrInvalidPolygon, len(cleaned))
	}
	if signedArea2(cleaned) < 0 {
		reverse(cleaned)
	}

	return Tile{kind: KindPolygon, poly: cleaned}, nil
}

// cleanupVertices drops consecutive duplicates and collinear runs.
func cleanupVertices(in []geom.Point) []geom.Point {
	if len(in) == 0 {
		return nil
	}

	// Drop consecutive duplicates (including wraparound).
	dedup := make([]geom.Point, 0, len(in))
	for i, p := range in {
		if i == 0 || p != dedup[len(dedup)-1] {
			dedup = append(dedup, p)
		}
	}
	for len(dedup) > 1 && dedup[0] == dedup[len(dedup)-1] {
		dedup = dedup[:len(dedup)-1]
	}
	if len(dedup) < 3 {
		return dedup
	}

	// Drop vertices collinear with both neighbors; repeat until stable,
	// bounded by len(dedup) passes since each pass removes at least one
	// vertex or terminates.
	changed := true
	for changed && len(dedup) >= 3 {
		changed = false
		out := make([]geom.Point, 0, len(dedup))
		n := len(dedup)
		for i := 0; i < n; i++ {
			prev := dedup[(i-1+n)%n]
			cur := dedup[i]
			next := dedup[(i+1)%n]
			if geom.SideOf(cur.Sub(prev), next.Sub(prev)) == geom.Collinear &&
				isBetween(prev, cur, next) {
				changed = true

				continue
			}
			out = append(out, cur)
		}
		dedup = out
	}

	return dedup
}

// isBetween reports whether cur lies on segment prev-next (used to confirm a
// collinear vertex is redundant rather than a reflex spike through the same
// line).
func isBetween(prev, cur, next geom.Point) bool {
	minX, maxX := prev.X, next.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := prev.Y, next.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	return cur.X >= minX && cur.X <= maxX && cur.Y >= minY && cur.Y <= maxY
}

func signedArea2(poly []geom.Point) int64 {
	var area int64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}

	return area
}

func reverse(poly []geom.Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

func polygonBoundingBox(poly []geom.Point) geom.Box {
	if len(poly) == 0 {
		return geom.EmptyBox()
	}
	b := geom.BoxFromPoint(poly[0])
	for _, p := range poly[1:] {
		b = b.Union(geom.BoxFromPoint(p))
	}

	return b
}

// polygonContains reports whether p lies within (or on the boundary of) a
// CCW convex polygon: true iff p is never strictly to the right of any edge.
func polygonContains(poly []geom.Point, p geom.Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if geom.SideOf(p.Sub(a), b.Sub(a)) == geom.Right {
			return false
		}
	}

	return true
}

// sutherlandHodgmanClip clips a CCW convex polygon against the left
// half-plane of a directed line, the general-case implementation of
// §4.4's intersection_with_halfplane.
func sutherlandHodgmanClip(poly []geom.Point, line geom.Line) []geom.Point {
	n := len(poly)
	if n == 0 {
		return nil
	}

	out := make([]geom.Point, 0, n+1)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn := line.Eval(cur) >= 0
		prevIn := line.Eval(prev) >= 0

		if curIn {
			if !prevIn {
				out = append(out, intersectSegmentLine(prev, cur, line))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersectSegmentLine(prev, cur, line))
		}
	}

	return out
}

// intersectSegmentLine returns the point where segment a-b crosses the
// boundary of line (a*x+b*y+c == 0), assuming the segment actually crosses
// it (one endpoint on each side).
func intersectSegmentLine(a, b geom.Point, line geom.Line) geom.Point {
	va := line.Eval(a)
	vb := line.Eval(b)
	denom := va - vb
	if denom == 0 {
		return a
	}
	// Parametrize p = a + t*(b-a), solve line.Eval(p) == 0 for t = va/(va-vb).
	dx := b.X - a.X
	dy := b.Y - a.Y

	return geom.Point{
		X: a.X + dx*va/denom,
		Y: a.Y + dy*va/denom,
	}
}
