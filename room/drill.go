package room

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/rules"
)

// PageSize is the nominal edge length of a drill page, approximately 5mm in
// internal units.
const PageSize = 5 * geom.UnitsPerMM

// candidateOffsets are the points within a page tried as drill locations,
// in preference order: center first, then four inset corners. This is a
// bounded substitute for splitting the page's free area into convex cells
// and placing a drill at each cell's center.
var candidateOffsets = []struct{ fx, fy float64 }{
	{0.5, 0.5},
	{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75},
}

// Drill is one admitted via candidate location: a point valid on every
// layer its via rule would need to span.
type Drill struct {
	Point         geom.Point
	RoomsByLayer  map[int]RoomID
}

// DrillPage is one cell of the board-covering drill grid. Its candidate
// drills are computed lazily and cached until Invalidate is called.
type DrillPage struct {
	Box     geom.Box
	dirty   bool
	drills  []Drill
}

// NewDrillPage returns a page covering box, initially dirty.
func NewDrillPage(box geom.Box) *DrillPage {
	return &DrillPage{Box: box, dirty: true}
}

// Invalidate discards cached drills, forcing CandidateDrills to recompute on
// its next call. The page does not observe the board: adding or removing an
// item inside its box leaves the cache as it is until Invalidate is called.
func (p *DrillPage) Invalidate() {
	p.dirty = true
	p.drills = nil
}

// RoomLookup resolves the complete room (if any) containing point on layer
// for net - supplied by the caller so this package does not depend on a
// specific room graph instance.
type RoomLookup func(point geom.Point, layer int) (RoomID, bool)

// CandidateDrills returns the admitted drill locations for net using rule's
// layer span, recomputing and caching them if the page is dirty.
func (p *DrillPage) CandidateDrills(board *boardmodel.Board, net int, rule *rules.ViaRule, lookup RoomLookup) []Drill {
	if !p.dirty {
		return p.drills
	}

	var out []Drill
	layers := viaRuleLayers(rule)

	for _, off := range candidateOffsets {
		pt := geom.Point{
			X: p.Box.Lo.X + int64(float64(p.Box.Width())*off.fx),
			Y: p.Box.Lo.Y + int64(float64(p.Box.Height())*off.fy),
		}

		rooms := make(map[int]RoomID, len(layers))
		admitted := true
		for _, layer := range layers {
			if board.IsProhibited(pt, layer, net) {
				admitted = false

				break
			}
			rid, ok := lookup(pt, layer)
			if !ok {
				admitted = false

				break
			}
			rooms[layer] = rid
		}

		if admitted {
			out = append(out, Drill{Point: pt, RoomsByLayer: rooms})
		}
	}

	p.drills = out
	p.dirty = false

	return out
}

// viaRuleLayers collects the distinct layers spanned by any entry of rule.
func viaRuleLayers(rule *rules.ViaRule) []int {
	seen := make(map[int]struct{})
	var layers []int
	for _, e := range rule.Entries {
		for l := e.FirstLayer; l <= e.LastLayer; l++ {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				layers = append(layers, l)
			}
		}
	}

	return layers
}
