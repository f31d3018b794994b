package tileshape

import "github.com/tracequest/tracequest/geom"

// vertices returns the CCW vertex list regardless of kind; used internally
// by every operation that needs a uniform representation (border lines,
// touching-edge detection, the general intersection fallback).
func (t Tile) vertices() []geom.Point {
	switch t.kind {
	case KindBox:
		if t.box.IsEmpty() {
			return nil
		}

		return []geom.Point{
			t.box.Lo,
			{X: t.box.Hi.X, Y: t.box.Lo.Y},
			t.box.Hi,
			{X: t.box.Lo.X, Y: t.box.Hi.Y},
		}
	case KindOctagon:
		return t.oct.vertices()
	default:
		return t.poly
	}
}

// Dim reports the tile's dimension: -1 empty, 0 point, 1 line, 2 area.
func (t Tile) Dim() int {
	verts := t.vertices()
	switch len(verts) {
	case 0:
		return -1
	case 1:
		return 0
	case 2:
		return 1
	default:
		area2 := signedArea2(verts)
		if area2 == 0 {
			// All collinear after cleanup attempts failed to reduce below
			// 3 points (can happen transiently from clipping, or for a box
			// of zero width or height): a point if every vertex coincides,
			// otherwise a line between the extreme points.
			for _, v := range verts[1:] {
				if v != verts[0] {
					return 1
				}
			}

			return 0
		}

		return 2
	}
}

// BoundingBox returns the axis-aligned box spanned by the tile.
func (t Tile) BoundingBox() geom.Box {
	switch t.kind {
	case KindBox:
		return t.box
	case KindOctagon:
		return t.oct.boundingBox()
	default:
		return polygonBoundingBox(t.poly)
	}
}

// Contains reports whether p lies within (or on the boundary of) the tile.
func (t Tile) Contains(p geom.Point) bool {
	switch t.kind {
	case KindBox:
		return t.box.Contains(p)
	default:
		verts := t.vertices()
		if len(verts) < 3 {
			return false
		}

		return polygonContains(verts, p)
	}
}

// Intersection returns a tile of dimension <= min(dim(t), dim(other)).
// Box-vs-box uses componentwise min/max; octagon-vs-octagon uses the
// componentwise eight-bound min/max; every other combination falls back to
// successive half-plane cuts (Sutherland-Hodgman) against other's border
// lines.
func (t Tile) Intersection(other Tile) Tile {
	if t.kind == KindBox && other.kind == KindBox {
		return FromBox(t.box.Intersection(other.box))
	}
	if t.kind == KindOctagon && other.kind == KindOctagon {
		return FromOctagon(intersectOctagons(t.oct, other.oct))
	}

	verts := t.vertices()
	if len(verts) < 3 {
		// Degenerate left operand: clamp each remaining point/segment
		// against other's half-planes instead of running Sutherland-Hodgman
		// (which requires a polygon to clip).
		return intersectDegenerate(verts, other)
	}
	for _, line := range other.borderLinesRaw() {
		verts = sutherlandHodgmanClip(verts, line)
		if len(verts) == 0 {
			return EmptyTile()
		}
	}
	if len(verts) < 3 {
		return rawPolygonTile(verts)
	}

	return rawPolygonTile(verts)
}

// intersectDegenerate clips a point or segment (0/1/2 vertices) against a
// tile's border half-planes, keeping only the sub-portion that survives
// every cut.
func intersectDegenerate(verts []geom.Point, other Tile) Tile {
	if len(verts) == 0 {
		return EmptyTile()
	}
	if len(verts) == 1 {
		if other.Contains(verts[0]) {
			return rawPolygonTile(verts)
		}

		return EmptyTile()
	}
	// A single segment: clip parametrically against each half-plane.
	a, b := verts[0], verts[1]
	lines := other.borderLinesRaw()
	t0, t1 := int64(0), int64(1<<20)
	const scale = int64(1 << 20)
	for _, line := range lines {
		va := line.Eval(a)
		vb := line.Eval(b)
		if va >= 0 && vb >= 0 {
			continue
		}
		if va < 0 && vb < 0 {
			return EmptyTile()
		}
		// Parametrize p(s) = a + s/scale*(b-a); solve line.Eval == 0.
		denom := va - vb
		s := va * scale / denom
		if va < 0 {
			if s > t0 {
				t0 = s
			}
		} else {
			if s < t1 {
				t1 = s
			}
		}
	}
	if t0 > t1 {
		return EmptyTile()
	}
	lerp := func(s int64) geom.Point {
		return geom.Point{
			X: a.X + (b.X-a.X)*s/scale,
			Y: a.Y + (b.Y-a.Y)*s/scale,
		}
	}
	p0 := lerp(t0)
	p1 := lerp(t1)
	if p0 == p1 {
		return rawPolygonTile([]geom.Point{p0})
	}

	return rawPolygonTile([]geom.Point{p0, p1})
}

// IntersectionWithHalfplane keeps the side of line on the left. Axis-aligned
// boxes cut by axis-aligned lines reduce to a single coordinate clamp;
// everything else runs Sutherland-Hodgman.
func (t Tile) IntersectionWithHalfplane(line geom.Line) Tile {
	if t.kind == KindBox {
		if clamped, ok := clampBoxByAxisLine(t.box, line); ok {
			return FromBox(clamped)
		}
	}

	verts := t.vertices()
	if len(verts) < 3 {
		return intersectDegenerate(verts, lineAsTile(line))
	}
	clipped := sutherlandHodgmanClip(verts, line)
	if len(clipped) == 0 {
		return EmptyTile()
	}

	return rawPolygonTile(clipped)
}

// lineAsTile wraps a half-plane as a degenerate "tile" purely so
// intersectDegenerate can reuse borderLinesRaw; only the returned line list
// matters, Contains/BoundingBox are never invoked on it.
func lineAsTile(line geom.Line) Tile {
	return Tile{kind: KindPolygon, poly: nil, box: geom.Box{}, oct: Octagon{}, borderOverride: []geom.Line{line}}
}

// clampBoxByAxisLine handles the fast path: line is axis-aligned (its
// direction vector has a zero X or Y component), so cutting box by its left
// half-plane is a single Lo/Hi coordinate clamp.
func clampBoxByAxisLine(box geom.Box, line geom.Line) (geom.Box, bool) {
	d := line.Direction()
	switch {
	case d.Y == 0 && d.X != 0:
		// Horizontal line: left side is y >= line.From.Y when direction is
		// +x, y <= line.From.Y when direction is -x.
		y := line.From.Y
		if d.X > 0 {
			if box.Lo.Y < y {
				box.Lo.Y = y
			}
		} else {
			if box.Hi.Y > y {
				box.Hi.Y = y
			}
		}

		return box, true
	case d.X == 0 && d.Y != 0:
		x := line.From.X
		if d.Y > 0 {
			if box.Hi.X > x {
				box.Hi.X = x
			}
		} else {
			if box.Lo.X < x {
				box.Lo.X = x
			}
		}

		return box, true
	default:
		return box, false
	}
}

// BorderLines returns the ordered CCW list of directed border edges.
func (t Tile) BorderLines() []geom.Line {
	return t.borderLinesRaw()
}

func (t Tile) borderLinesRaw() []geom.Line {
	if t.borderOverride != nil {
		return t.borderOverride
	}
	verts := t.vertices()
	if len(verts) < 2 {
		return nil
	}
	n := len(verts)
	lines := make([]geom.Line, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, geom.NewLine(verts[i], verts[(i+1)%n]))
	}

	return lines
}

// TouchingSides returns the subset of t's border lines whose interior is
// shared with other's boundary; non-empty only when t.Intersection(other)
// is exactly 1-D.
func (t Tile) TouchingSides(other Tile) []geom.Line {
	if t.Intersection(other).Dim() != 1 {
		return nil
	}

	var touching []geom.Line
	otherBox := other.BoundingBox()
	for _, line := range t.borderLinesRaw() {
		seg := tileshapeSegmentBox(line)
		if seg.Intersects(otherBox) && other.touchesSegment(line) {
			touching = append(touching, line)
		}
	}

	return touching
}

func tileshapeSegmentBox(line geom.Line) geom.Box {
	return geom.BoxFromPoints(line.From, line.To)
}

// touchesSegment reports whether line's underlying segment lies on t's
// boundary (every point of the segment is on the boundary, not the
// interior).
func (t Tile) touchesSegment(line geom.Line) bool {
	for _, p := range []geom.Point{line.From, line.To} {
		if !t.Contains(p) {
			return false
		}
	}
	mid := geom.Point{X: (line.From.X + line.To.X) / 2, Y: (line.From.Y + line.To.Y) / 2}

	return t.Contains(mid) && t.Dim() >= 1
}

// DistanceToLeft returns the signed distance of the farthest corner to the
// left of line: max over every vertex of line.Eval(vertex). A positive
// value means the tile lies (at least partly) on the left of line.
func (t Tile) DistanceToLeft(line geom.Line) int64 {
	verts := t.vertices()
	if len(verts) == 0 {
		return -geom.CritInt
	}
	best := line.Eval(verts[0])
	for _, p := range verts[1:] {
		if v := line.Eval(p); v > best {
			best = v
		}
	}

	return best
}

func rawPolygonTile(verts []geom.Point) Tile {
	if len(verts) == 0 {
		return EmptyTile()
	}

	return Tile{kind: KindPolygon, poly: verts}
}
