package heuristic

import (
	"math"

	"github.com/tracequest/tracequest/geom"
)

// LayerCost is the per-unit-length cost of routing horizontally (H) and
// vertically (V) on one layer; asymmetric costs bias the search toward a
// layer's preferred direction.
type LayerCost struct {
	H, V int64
}

// Heuristic estimates the remaining cost from any (point, layer) to the
// nearest destination box, minimised over staying on the current layer or
// changing layer once or twice.
type Heuristic struct {
	layerCosts   []LayerCost
	destinations map[int][]geom.Box
	viaCost      int64
	activeLayers int
}

// New builds a Heuristic. layerCosts is indexed by layer number;
// destinations groups each target item's bounding box by the layer it sits
// on; viaCost is the cheapest via cost available (min_normal_via_cost).
func New(layerCosts []LayerCost, destinations map[int][]geom.Box, viaCost int64) *Heuristic {
	return &Heuristic{
		layerCosts:   layerCosts,
		destinations: destinations,
		viaCost:      viaCost,
		activeLayers: len(layerCosts),
	}
}

// Distance returns the admissible lower-bound cost from (p, layer) to the
// nearest destination, minimised over the one-layer, two-layer (one via),
// and three-layer (two vias) paths.
func (h *Heuristic) Distance(p geom.Point, layer int) int64 {
	if layer < 0 || layer >= len(h.layerCosts) {
		return math.MaxInt64
	}

	best := int64(math.MaxInt64)
	cost := h.layerCosts[layer]

	if boxes, ok := h.destinations[layer]; ok {
		for _, b := range boxes {
			if d := weightedDistance(p, b, cost); d < best {
				best = d
			}
		}
	}

	for otherLayer, boxes := range h.destinations {
		if otherLayer == layer {
			continue
		}
		for _, b := range boxes {
			if d := weightedDistance(p, b, cost) + h.viaCost; d < best {
				best = d
			}
		}
	}

	if h.activeLayers >= 3 {
		for l2 := range h.destinations {
			if l2 == layer {
				continue
			}
			for l3, boxes := range h.destinations {
				if l3 == layer || l3 == l2 {
					continue
				}
				for _, b := range boxes {
					if d := weightedDistance(p, b, cost) + 2*h.viaCost; d < best {
						best = d
					}
				}
			}
		}
	}

	return best
}

// weightedDistance returns h*dx + v*dy, the weighted rectilinear gap
// between p and box: 0 along an axis p's coordinate already overlaps.
func weightedDistance(p geom.Point, box geom.Box, cost LayerCost) int64 {
	var dx, dy int64
	switch {
	case p.X < box.Lo.X:
		dx = box.Lo.X - p.X
	case p.X > box.Hi.X:
		dx = p.X - box.Hi.X
	}
	switch {
	case p.Y < box.Lo.Y:
		dy = box.Lo.Y - p.Y
	case p.Y > box.Hi.Y:
		dy = p.Y - box.Hi.Y
	}

	return cost.H*dx + cost.V*dy
}
