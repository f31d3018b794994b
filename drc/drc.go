package drc

import (
	"fmt"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
)

// Check runs every pass over board and returns every violation found, in no
// particular order.
func Check(board *boardmodel.Board) []Violation {
	var out []Violation
	out = append(out, checkClearanceAndConflicts(board)...)
	out = append(out, checkKeepOuts(board)...)
	out = append(out, checkUnconnectedNets(board)...)

	return out
}

// checkClearanceAndConflicts flags, for every pair of differently-netted
// copper items sharing a layer, either an outright NetConflict (their
// bounding boxes actually overlap) or a Clearance violation (they are
// closer than the clearance matrix allows).
func checkClearanceAndConflicts(board *boardmodel.Board) []Violation {
	var out []Violation
	matrix := board.ClearanceMatrix()

	for _, it := range board.Items() {
		if !isCopper(it.Kind) {
			continue
		}

		for layer := it.FirstLayer; layer <= it.LastLayer; layer++ {
			radius := matrix.RowMax(it.ClearanceClass, layer)
			box := it.BoundingBox().Expand(radius)

			for _, other := range board.NeighborsInBox(box, layer) {
				if other.ID <= it.ID || !isCopper(other.Kind) {
					continue // each pair reported once, from the lower id
				}
				if it.SharesNetWith(other) {
					continue
				}

				loc := it.BoundingBox().Union(other.BoundingBox()).Center()
				if it.BoundingBox().Intersects(other.BoundingBox()) {
					out = append(out, Violation{
						Kind:     KindNetConflict,
						Severity: SeverityError,
						Message:  fmt.Sprintf("item %d and item %d on different nets physically overlap", it.ID, other.ID),
						Layer:    layer,
						Location: loc,
						ItemIDs:  []uint32{it.ID, other.ID},
					})

					continue
				}

				required := matrix.Clearance(it.ClearanceClass, other.ClearanceClass, layer, false)
				gap := boxGap(it.BoundingBox(), other.BoundingBox())
				if gap < required {
					out = append(out, Violation{
						Kind:     KindClearance,
						Severity: SeverityError,
						Message:  fmt.Sprintf("item %d and item %d are %d units apart, %d required", it.ID, other.ID, gap, required),
						Layer:    layer,
						Location: loc,
						ItemIDs:  []uint32{it.ID, other.ID},
					})
				}
			}
		}
	}

	return out
}

// checkKeepOuts flags every item a keep-out prohibits, reusing
// boardmodel.Item.IsObstacle's per-kind keep-out contract (including its
// NetScope exemption).
func checkKeepOuts(board *boardmodel.Board) []Violation {
	var out []Violation

	for _, k := range board.Items() {
		if k.Kind != boardmodel.KindKeepOut {
			continue
		}

		box := k.BoundingBox()
		for layer := k.FirstLayer; layer <= k.LastLayer; layer++ {
			for _, other := range board.NeighborsInBox(box, layer) {
				if !k.IsObstacle(other) {
					continue
				}

				out = append(out, Violation{
					Kind:     KindKeepOut,
					Severity: SeverityError,
					Message:  fmt.Sprintf("item %d violates keep-out %d", other.ID, k.ID),
					Layer:    layer,
					Location: other.BoundingBox().Center(),
					ItemIDs:  []uint32{k.ID, other.ID},
				})
			}
		}
	}

	return out
}

// checkUnconnectedNets flags every net whose items form more than one
// connected component - an open (not fully routed) net.
func checkUnconnectedNets(board *boardmodel.Board) []Violation {
	var out []Violation
	seen := make(map[int]bool)

	for _, it := range board.Items() {
		for n := range it.Nets {
			if seen[n] || n == 0 {
				continue
			}
			seen[n] = true

			components := board.ConnectedComponents(n)
			if len(components) <= 1 {
				continue
			}

			var ids []uint32
			for _, group := range components {
				for _, member := range group {
					ids = append(ids, member.ID)
				}
			}

			out = append(out, Violation{
				Kind:     KindUnconnectedNet,
				Severity: SeverityError,
				Message:  fmt.Sprintf("net %d has %d disconnected groups", n, len(components)),
				ItemIDs:  ids,
			})
		}
	}

	return out
}

func isCopper(k boardmodel.Kind) bool {
	return k == boardmodel.KindPad || k == boardmodel.KindVia || k == boardmodel.KindTrace
}

// boxGap returns the Chebyshev (rectilinear) gap between two boxes: 0 along
// any axis they already overlap on, the axis separation otherwise - a
// conservative stand-in for true edge-to-edge Euclidean distance, cheap
// enough to compute on every candidate pair.
func boxGap(a, b geom.Box) int64 {
	var dx, dy int64
	switch {
	case b.Lo.X > a.Hi.X:
		dx = b.Lo.X - a.Hi.X
	case a.Lo.X > b.Hi.X:
		dx = a.Lo.X - b.Hi.X
	}
	switch {
	case b.Lo.Y > a.Hi.Y:
		dy = b.Lo.Y - a.Hi.Y
	case a.Lo.Y > b.Hi.Y:
		dy = a.Lo.Y - b.Hi.Y
	}

	if dx > dy {
		return dx
	}

	return dy
}
