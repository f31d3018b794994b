package maze

import (
	"errors"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
)

// ErrAngleConflict indicates that snapping a path to the active angle
// policy introduced a segment that collides with an obstacle; the caller
// should treat the connection as not-routed at the current ripup budget
// rather than silently keeping the unsnapped path.
var ErrAngleConflict = errors.New("maze: snapped path conflicts with an obstacle")

// AnglePolicy restricts the directions a trace segment may run in.
type AnglePolicy int

const (
	AngleNone AnglePolicy = iota
	Angle45
	Angle90
)

// PointLayer pairs a path point with the layer it sits on, so a layer
// change (via) can be told apart from a same-layer segment.
type PointLayer struct {
	Point geom.Point
	Layer int
}

// Snap rewrites path so every same-layer segment runs in a direction legal
// under policy, inserting one corner point per segment that needs it, then
// re-validates every inserted segment against board obstacles for net.
// AngleNone returns path unchanged.
func Snap(board *boardmodel.Board, net int, path []PointLayer, policy AnglePolicy) ([]PointLayer, error) {
	if policy == AngleNone || len(path) < 2 {
		return path, nil
	}

	out := make([]PointLayer, 0, len(path)*2)
	out = append(out, path[0])

	for i := 1; i < len(path); i++ {
		prev := out[len(out)-1]
		cur := path[i]
		if prev.Layer != cur.Layer {
			out = append(out, cur)

			continue
		}

		corner, needsCorner := snapCorner(prev.Point, cur.Point, policy)
		if needsCorner {
			cp := PointLayer{Point: corner, Layer: cur.Layer}
			if err := checkSegment(board, net, prev, cp); err != nil {
				return nil, err
			}
			out = append(out, cp)
			if err := checkSegment(board, net, cp, cur); err != nil {
				return nil, err
			}
			out = append(out, cur)

			continue
		}

		if err := checkSegment(board, net, prev, cur); err != nil {
			return nil, err
		}
		out = append(out, cur)
	}

	return out, nil
}

// snapCorner returns the single corner point needed to convert a direct
// a->b segment into a polyline legal under policy, and whether a corner is
// needed at all (false means a->b is already legal as-is).
func snapCorner(a, b geom.Point, policy AnglePolicy) (geom.Point, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if policy == Angle90 {
		if dx == 0 || dy == 0 {
			return geom.Point{}, false
		}

		return geom.Point{X: b.X, Y: a.Y}, true
	}

	// Angle45: legal directions are axis-aligned or exactly diagonal.
	adx, ady := geom.AbsInt64(dx), geom.AbsInt64(dy)
	if dx == 0 || dy == 0 || adx == ady {
		return geom.Point{}, false
	}

	sx, sy := int64(1), int64(1)
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}

	if adx > ady {
		// One 45-degree leg covering the full Y delta, then a horizontal
		// run for the remaining X delta.
		return geom.Point{X: a.X + sx*ady, Y: b.Y}, true
	}

	return geom.Point{X: b.X, Y: a.Y + sy*adx}, true
}

// checkSegment reports ErrAngleConflict if the segment from a to b on a's
// layer is blocked by a non-ripupable obstacle.
func checkSegment(board *boardmodel.Board, net int, a, b PointLayer) error {
	box := geom.BoxFromPoints(a.Point, b.Point)
	for _, obstacle := range board.ObstaclesForTrace(net, box, a.Layer, a.Layer) {
		if !Ripupable(obstacle) {
			return ErrAngleConflict
		}
	}

	return nil
}
