package tileshape

import "github.com/tracequest/tracequest/geom"

// Kind discriminates the three tile variants. Dispatch is always on this
// tag, avoiding a virtual-dispatch chain across shape kinds.
type Kind int

const (
	// KindBox is a 90°-routing axis-aligned rectangle.
	KindBox Kind = iota
	// KindOctagon is a 45°-routing octagon: four axis-aligned bounds plus
	// four diagonal bounds.
	KindOctagon
	// KindPolygon is a general convex polygon (CCW vertex list).
	KindPolygon
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindOctagon:
		return "Octagon"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Octagon holds the eight bound values of a 45°-routing tile: the four
// axis-aligned bounds (LX <= x <= HX, LY <= y <= HY) and the four diagonal
// bounds expressed as signed distances along the two ±45° normals
// (LD1 <= x-y <= HD1, LD2 <= x+y <= HD2).
type Octagon struct {
	LX, HX, LY, HY   int64
	LD1, HD1         int64 // bounds on x - y
	LD2, HD2         int64 // bounds on x + y
}

// Tile is a convex polygon variant: Box, Octagon, or Polygon. A Tile value
// is immutable once constructed; every transform returns a new Tile.
type Tile struct {
	kind Kind
	box  geom.Box
	oct  Octagon
	// poly holds CCW vertices with collinear points and duplicates removed;
	// only meaningful when kind == KindPolygon.
	poly []geom.Point
	// borderOverride, when set, short-circuits borderLinesRaw for internal
	// helper values (e.g. a bare half-plane wrapped for reuse by
	// intersectDegenerate) that are never queried for anything else.
	borderOverride []geom.Line
}

// Kind reports which variant the tile holds.
func (t Tile) Kind() Kind {
	return t.kind
}

// FromBox wraps an axis-aligned box as a Tile.
func FromBox(b geom.Box) Tile {
	return Tile{kind: KindBox, box: b}
}

// FromOctagon wraps a set of octagon bounds as a Tile. The caller is
// responsible for ensuring LX<=HX, LY<=HY, LD1<=HD1, LD2<=HD2; a violated
// bound simply yields an empty-dimension tile (Dim() == -1), which every
// consumer already treats as "no room here".
func FromOctagon(o Octagon) Tile {
	return Tile{kind: KindOctagon, oct: o}
}

// EmptyTile returns the canonical empty box tile.
func EmptyTile() Tile {
	return FromBox(geom.EmptyBox())
}
