package batch

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
)

// Optimize straightens a net's routed traces in two steps: first merging
// every pair of collinear, end-to-end trace segments into one, then pulling
// taut any remaining two-segment corner whose direct replacement is no
// longer than accuracy units shorter and collides with nothing. Runs until
// a full pass makes no change. Grounded on
// original_source/include/board/RouteOptimizer.h.
func Optimize(board *boardmodel.Board, net int, accuracy int64) {
	for mergeCollinear(board, net) {
	}
	for pullTight(board, net, accuracy) {
	}
}

// joint describes two routable same-net, same-layer traces meeting
// end-to-end at a point touched by nothing else.
type joint struct {
	point      geom.Point
	layer      int
	a, b       *boardmodel.Item
	aFar, bFar geom.Point
}

// findJoint scans every routable trace endpoint for a point touched by
// exactly one other same-net, same-layer trace, and returns the first one
// accept approves, or ok == false once every candidate has been tried.
func findJoint(board *boardmodel.Board, net int, accept func(joint) bool) (joint, bool) {
	traces := routableTraces(board, net)

	for _, a := range traces {
		for _, end := range []geom.Point{a.TraceFrom, a.TraceTo} {
			touching := board.NeighborsInBox(geom.BoxFromPoint(end), a.FirstLayer)
			if len(touching) != 2 {
				continue
			}

			var b *boardmodel.Item
			for _, t := range touching {
				if t.ID != a.ID {
					b = t
				}
			}
			if b == nil || b.Kind != boardmodel.KindTrace || !b.Routable() || !b.HasNet(net) {
				continue
			}
			if b.FirstLayer != a.FirstLayer {
				continue
			}

			aFar := a.TraceTo
			if end == a.TraceTo {
				aFar = a.TraceFrom
			}
			bFar := b.TraceTo
			if end == b.TraceTo {
				bFar = b.TraceFrom
			}

			j := joint{point: end, layer: a.FirstLayer, a: a, b: b, aFar: aFar, bFar: bFar}
			if accept(j) {
				return j, true
			}
		}
	}

	return joint{}, false
}

func routableTraces(board *boardmodel.Board, net int) []*boardmodel.Item {
	var out []*boardmodel.Item
	for _, it := range board.ItemsByNet(net) {
		if it.Kind == boardmodel.KindTrace && it.Routable() {
			out = append(out, it)
		}
	}

	return out
}

// mergeCollinear finds one joint whose two legs run in the same direction
// and replaces them with a single trace spanning both far endpoints.
// Returns whether it made a change.
func mergeCollinear(board *boardmodel.Board, net int) bool {
	j, ok := findJoint(board, net, func(j joint) bool {
		va := j.point.Sub(j.aFar)
		vb := j.bFar.Sub(j.point)

		return geom.Cross(va, vb) == 0
	})
	if !ok {
		return false
	}

	return replaceJoint(board, net, j, j.aFar, j.bFar)
}

// pullTight finds one joint whose far endpoints can be joined directly
// (within accuracy of the combined leg length, and collision-free) and
// straightens it.
func pullTight(board *boardmodel.Board, net int, accuracy int64) bool {
	j, ok := findJoint(board, net, func(j joint) bool {
		current := geom.ManhattanDistance(j.aFar, j.point) + geom.ManhattanDistance(j.point, j.bFar)
		direct := geom.ManhattanDistance(j.aFar, j.bFar)
		if current-direct > accuracy {
			return false
		}

		box := geom.BoxFromPoints(j.aFar, j.bFar).Expand(j.a.HalfWidth)

		return len(board.ObstaclesForTrace(net, box, j.layer, j.layer)) == 0
	})
	if !ok {
		return false
	}

	return replaceJoint(board, net, j, j.aFar, j.bFar)
}

// replaceJoint removes j's two legs and inserts a single trace from from to
// to in their place. The old legs are removed first so the replacement's
// own footprint does not collide with them.
func replaceJoint(board *boardmodel.Board, net int, j joint, from, to geom.Point) bool {
	halfWidth := j.a.HalfWidth
	class := j.a.ClearanceClass
	board.RemoveItem(j.a.ID)
	board.RemoveItem(j.b.ID)

	_, err := board.AddItem(&boardmodel.Item{
		Kind:           boardmodel.KindTrace,
		TraceFrom:      from,
		TraceTo:        to,
		HalfWidth:      halfWidth,
		ClearanceClass: class,
		Nets:           map[int]struct{}{net: {}},
		FirstLayer:     j.layer,
		LastLayer:      j.layer,
	})

	return err == nil
}
