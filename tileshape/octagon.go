package tileshape

import "github.com/tracequest/tracequest/geom"

// diagLines returns the eight half-plane constraints an Octagon represents,
// the four upper bounds (x<=HX, x-y<=HD1, y<=HY, x+y<=HD2) followed by the
// four lower bounds; each Line's *left* half-plane is the side the octagon
// keeps.
func (o Octagon) diagLines() []geom.Line {
	// Each line is built from two points one unit step apart on it, oriented
	// so the octagon's interior is on the left. The unit step keeps Eval
	// within the coordinate range, so clipping's products fit in int64.
	return []geom.Line{
		// x <= HX  -> line through (HX, 0) -> (HX, 1), kept on left.
		geom.NewLine(geom.Point{X: o.HX, Y: 0}, geom.Point{X: o.HX, Y: 1}),
		// x - y <= HD1 -> x - y - HD1 <= 0
		geom.NewLine(geom.Point{X: o.HD1, Y: 0}, geom.Point{X: o.HD1 + 1, Y: 1}),
		// y <= HY
		geom.NewLine(geom.Point{X: 0, Y: o.HY}, geom.Point{X: -1, Y: o.HY}),
		// x + y <= HD2
		geom.NewLine(geom.Point{X: 0, Y: o.HD2}, geom.Point{X: -1, Y: o.HD2 + 1}),
		// x >= LX
		geom.NewLine(geom.Point{X: o.LX, Y: 0}, geom.Point{X: o.LX, Y: -1}),
		// x - y >= LD1
		geom.NewLine(geom.Point{X: o.LD1, Y: 0}, geom.Point{X: o.LD1 - 1, Y: -1}),
		// y >= LY
		geom.NewLine(geom.Point{X: 0, Y: o.LY}, geom.Point{X: 1, Y: o.LY}),
		// x + y >= LD2
		geom.NewLine(geom.Point{X: 0, Y: o.LD2}, geom.Point{X: 1, Y: o.LD2 - 1}),
	}
}

// vertices returns the CCW vertex list of the octagon's shape, obtained by
// clipping an oversized square against the eight bounds in turn. Degenerate
// octagons (conflicting bounds) yield fewer than 3 vertices.
func (o Octagon) vertices() []geom.Point {
	big := geom.CritInt
	poly := []geom.Point{
		{X: -big, Y: -big}, {X: big, Y: -big}, {X: big, Y: big}, {X: -big, Y: big},
	}
	for _, line := range o.diagLines() {
		poly = sutherlandHodgmanClip(poly, line)
		if len(poly) == 0 {
			return nil
		}
	}

	return poly
}

// boundingBox returns the box spanned by the axis-aligned bounds alone
// (a superset of the true octagon shape, adequate for spatial-index keys).
func (o Octagon) boundingBox() geom.Box {
	b := geom.Box{Lo: geom.Point{X: o.LX, Y: o.LY}, Hi: geom.Point{X: o.HX, Y: o.HY}}
	if b.IsEmpty() {
		return geom.EmptyBox()
	}

	return b
}

// intersectOctagons computes the componentwise min/max of two octagons'
// eight bounds - the fast path that avoids a general polygon clip.
func intersectOctagons(a, b Octagon) Octagon {
	return Octagon{
		LX: max64(a.LX, b.LX), HX: min64(a.HX, b.HX),
		LY: max64(a.LY, b.LY), HY: min64(a.HY, b.HY),
		LD1: max64(a.LD1, b.LD1), HD1: min64(a.HD1, b.HD1),
		LD2: max64(a.LD2, b.LD2), HD2: min64(a.HD2, b.HD2),
	}
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
