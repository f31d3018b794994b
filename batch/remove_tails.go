package batch

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/internal/unionfind"
)

// RemoveTails deletes every routable trace on net with a dangling endpoint -
// one no other same-net item touches - repeating until a pass removes
// nothing, then (if removeUnconnectedVias) deletes every routable via whose
// removal would not increase the net's component count. Returns the removed
// item ids.
func RemoveTails(board *boardmodel.Board, net int, removeUnconnectedVias bool) []uint32 {
	var removed []uint32

	for {
		progressed := false
		for _, it := range board.ItemsByNet(net) {
			if it.Kind != boardmodel.KindTrace || !it.Routable() {
				continue
			}
			if isDangling(board, it, it.TraceFrom) || isDangling(board, it, it.TraceTo) {
				board.RemoveItem(it.ID)
				removed = append(removed, it.ID)
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	if removeUnconnectedVias {
		for _, it := range board.ItemsByNet(net) {
			if it.Kind != boardmodel.KindVia || !it.Routable() {
				continue
			}
			if viaIsRedundant(board, net, it.ID) {
				board.RemoveItem(it.ID)
				removed = append(removed, it.ID)
			}
		}
	}

	return removed
}

// isDangling reports whether no other item sharing it's net overlaps point
// on it's layer - point is a loose end nothing else terminates at.
func isDangling(board *boardmodel.Board, it *boardmodel.Item, point geom.Point) bool {
	for _, other := range board.NeighborsInBox(geom.BoxFromPoint(point), it.FirstLayer) {
		if other.ID == it.ID {
			continue
		}
		if other.HasNet(itemNet(it)) {
			return false
		}
	}

	return true
}

func itemNet(it *boardmodel.Item) int {
	for n := range it.Nets {
		return n
	}

	return 0
}

// viaIsRedundant reports whether excludeID can be dropped from net without
// increasing its connected-component count, tested against the item list
// directly (the same bounding-box union-find boardmodel.Board.
// ConnectedComponents runs) rather than by mutating and reinserting the via,
// which would hand it a new item id.
func viaIsRedundant(board *boardmodel.Board, net int, excludeID uint32) bool {
	items := board.ItemsByNet(net)

	before := componentCount(items)

	filtered := items[:0:0]
	for _, it := range items {
		if it.ID != excludeID {
			filtered = append(filtered, it)
		}
	}

	after := componentCount(filtered)

	return after <= before
}

func componentCount(items []*boardmodel.Item) int {
	dsu := unionfind.New()
	for _, it := range items {
		dsu.Add(it.ID)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if !a.LayerOverlaps(b.FirstLayer, b.LastLayer) {
				continue
			}
			if a.BoundingBox().Intersects(b.BoundingBox()) {
				dsu.Union(a.ID, b.ID)
			}
		}
	}

	return len(dsu.Groups())
}
