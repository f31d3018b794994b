// Package spatialindex implements a bounding-box tree: a binary tree whose
// leaves are (item id, sub-shape index, bounding box) and whose internal
// nodes' boxes are the union of their children's. Insertion descends via
// minimum-area-increase; queries recurse into any child whose box intersects
// the query box; deletion splices out internal nodes left with a single
// child.
//
// Grounded on original_source/include/geometry/{ShapeTree.h,SpatialIndex.h}
// for the algorithm, rendered in the style of github.com/katalvlaran/lvlath's
// core.Graph: an RWMutex-guarded struct with a map from a generated id (here,
// item id) to its stored entries, so removal and re-insertion are O(leaves
// for that item) rather than a full scan.
//
// Errors: none. Insert with an empty box is ignored and query with an empty
// box returns empty - there is nothing here that returns an error.
package spatialindex

// ItemRef identifies one leaf: the board item it belongs to and which of
// that item's sub-shapes (a multi-shape item, e.g. a polygon keep-out split
// into convex pieces, may register more than one leaf).
type ItemRef struct {
	ItemID   uint32
	SubShape int
}

// LayerSpan is the inclusive [First, Last] layer range a leaf is valid on;
// a query may filter by a single layer falling within this range.
type LayerSpan struct {
	First, Last int
}

// Contains reports whether layer falls within the span.
func (s LayerSpan) Contains(layer int) bool {
	return layer >= s.First && layer <= s.Last
}
