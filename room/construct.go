package room

import (
	"math"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/tileshape"
)

// NewIncompleteRoom seeds a room that must be completed before it can carry
// doors: shape starts as the full candidate box, required is the
// source/destination footprint that every cut must preserve.
func NewIncompleteRoom(net, layer int, candidate, required geom.Box) *Room {
	return &Room{
		Net:      net,
		Layer:    layer,
		Shape:    tileshape.FromBox(candidate),
		required: tileshape.FromBox(required),
	}
}

// CompleteRoom repeatedly cuts r's shape down to a convex region free of
// any obstacle to r.Net, stopping when no further cut applies (r becomes
// complete). A cut that eats into the required footprint shrinks required to
// the part still inside the shape; ErrNoSpaceForRequired is returned only
// when nothing of the footprint remains.
func CompleteRoom(board *boardmodel.Board, r *Room) error {
	for i := 0; i < maxCompletionIterations; i++ {
		obstacles := board.ObstaclesForTrace(r.Net, r.Shape.BoundingBox(), r.Layer, r.Layer)
		if len(obstacles) == 0 {
			r.Complete = true

			return nil
		}

		cutAny := false
		for _, obstacle := range obstacles {
			line, ok := separatingEdge(r.required, obstacleTile(obstacle))
			if !ok {
				continue
			}

			cut := r.Shape.IntersectionWithHalfplane(line.Reversed())
			if cut.Dim() < 0 {
				continue
			}
			r.Shape = cut
			cutAny = true
		}

		if !cutAny {
			r.Complete = true

			return nil
		}

		if !shapeContainsApprox(r.Shape, r.required) {
			r.required = r.Shape.Intersection(r.required)
			if r.required.Dim() < 0 {
				return ErrNoSpaceForRequired
			}
		}
	}

	r.Complete = true

	return nil
}

// obstacleTile returns the best available convex representation of an
// obstacle's geometry: its own tile shape for pads/keep-outs/outlines/pours,
// or a box built from its bounding box for vias/traces.
func obstacleTile(it *boardmodel.Item) tileshape.Tile {
	switch it.Kind {
	case boardmodel.KindPad:
		if it.PadShape.Dim() >= 0 {
			return it.PadShape
		}
	case boardmodel.KindKeepOut, boardmodel.KindOutline, boardmodel.KindPour:
		if it.Shape.Dim() >= 0 {
			return it.Shape
		}
	}

	return tileshape.FromBox(it.BoundingBox())
}

// separatingEdge picks the obstacle border edge that faces required -
// required lies strictly on the edge's right (exterior, obstacle-free)
// side - farthest from it among candidates (tie-break: lower edge index).
// The returned line keeps the teacher's (and BorderLines') interior-is-left
// orientation; the caller cuts with line.Reversed() to keep the exterior
// half-plane and discard the obstacle's side.
func separatingEdge(required, obstacle tileshape.Tile) (geom.Line, bool) {
	lines := obstacle.BorderLines()
	var best geom.Line
	bestDist := int64(math.MinInt64)
	found := false

	for _, line := range lines {
		if required.IntersectionWithHalfplane(line).Dim() >= 0 {
			continue // required reaches into the obstacle's (left) side of line
		}
		d := minEvalOverBox(required, line.Reversed())
		if !found || d > bestDist {
			best, bestDist, found = line, d, true
		}
	}

	return best, found
}

// minEvalOverBox evaluates line at every corner of t's bounding box and
// returns the smallest value - a conservative stand-in for "distance from
// t to line" used to rank candidate separating edges (separatingEdge passes
// the reversed edge, so the value is positive on the exterior side).
func minEvalOverBox(t tileshape.Tile, line geom.Line) int64 {
	box := t.BoundingBox()
	corners := [4]geom.Point{
		box.Lo,
		{X: box.Hi.X, Y: box.Lo.Y},
		box.Hi,
		{X: box.Lo.X, Y: box.Hi.Y},
	}
	best := line.Eval(corners[0])
	for _, c := range corners[1:] {
		if v := line.Eval(c); v < best {
			best = v
		}
	}

	return best
}

// shapeContainsApprox reports whether big contains small's bounding box -
// an axis-aligned approximation used to decide whether a cut ate into the
// required footprint.
func shapeContainsApprox(big, small tileshape.Tile) bool {
	return big.BoundingBox().ContainsBox(small.BoundingBox())
}
