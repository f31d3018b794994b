package router

import (
	"fmt"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/maze"
	"github.com/tracequest/tracequest/room"
	"github.com/tracequest/tracequest/rules"
)

// DefaultRoomMargin is used when Config.RoomMargin is left zero.
const DefaultRoomMargin = 10 * geom.UnitsPerMM

// Connect attempts to route source to dest on cfg.Net. It builds one
// expansion room per active, signal-carrying layer spanning the union of
// source and dest (plus a margin), links same-layer rooms that overlap,
// adds drill doors between layer-pairs the net class's via rule can
// bridge, searches the resulting graph, and - if a path is found - snaps
// it to the angle policy and writes the resulting trace/via items to
// board. A returned Result with Routed == false means no legal path
// existed at the current ripup budget; this is not itself an error.
func Connect(board *boardmodel.Board, source, dest *boardmodel.Item, cfg Config) (*Result, error) {
	if cfg.NetClass == nil {
		return nil, ErrNetClassRequired
	}
	if !source.HasNet(cfg.Net) || !dest.HasNet(cfg.Net) {
		return nil, ErrCrossNetConnection
	}

	margin := cfg.RoomMargin
	if margin <= 0 {
		margin = DefaultRoomMargin
	}

	required := source.BoundingBox().Union(dest.BoundingBox())
	candidate := required.Expand(margin)

	graph := room.NewGraph()
	rooms := make(map[int]*room.Room)

	for _, layer := range activeLayers(board, cfg.NetClass) {
		r := room.NewIncompleteRoom(cfg.Net, layer, candidate, required)
		if err := room.CompleteRoom(board, r); err != nil {
			continue // no room fits this layer; try the next one
		}
		graph.AddRoom(r)
		rooms[layer] = r
	}

	for _, r := range rooms {
		room.GenerateDoors(graph, board, r, source.ID, dest.ID)
	}

	addDrillDoors(graph, board, rooms, cfg, candidate)

	h := buildHeuristic(cfg, dest)

	mazeCfg := maze.Config{
		Net:           cfg.Net,
		PassNumber:    cfg.PassNumber,
		RipupBudget:   cfg.RipupBudget,
		MaxIterations: cfg.MaxIterations,
		LayerCosts:    cfg.LayerCosts,
		Heuristic:     h,
		ViaRule:       cfg.NetClass.ViaRule(),
		RipupConfig:   cfg.RipupConfig,
	}

	result, err := maze.Search(board, graph, mazeCfg)
	if err != nil {
		return nil, fmt.Errorf("router: Connect: %w", err)
	}
	if !result.Reached {
		return &Result{Routed: false, Iterations: result.Iterations}, nil
	}

	snapped, err := maze.Snap(board, cfg.Net, result.Path, cfg.AnglePolicy)
	if err != nil {
		return &Result{Routed: false, Iterations: result.Iterations}, nil
	}

	for _, id := range result.RippedItems {
		board.RemoveItem(id)
	}

	traceIDs, viaIDs, err := realize(board, cfg, snapped)
	if err != nil {
		return nil, fmt.Errorf("router: Connect: %w", err)
	}

	return &Result{
		Routed:        true,
		Path:          snapped,
		TraceIDs:      traceIDs,
		ViaIDs:        viaIDs,
		RippedItemIDs: result.RippedItems,
		Iterations:    result.Iterations,
	}, nil
}

// activeLayers returns every signal layer the net class may use.
func activeLayers(board *boardmodel.Board, nc *rules.NetClass) []int {
	var out []int
	for i, layer := range board.Layers() {
		if layer.Signal && nc.ActiveLayers.HasLayer(i) {
			out = append(out, i)
		}
	}

	return out
}

// addDrillDoors links every pair of completed rooms on different layers
// through the candidate via locations the net class's rule admits over
// their shared footprint.
func addDrillDoors(graph *room.Graph, board *boardmodel.Board, rooms map[int]*room.Room, cfg Config, box geom.Box) {
	layers := make([]int, 0, len(rooms))
	for l := range rooms {
		layers = append(layers, l)
	}

	for i := 0; i < len(layers); i++ {
		for j := i + 1; j < len(layers); j++ {
			a, b := rooms[layers[i]], rooms[layers[j]]
			via, ok := cfg.NetClass.ViaRule().Select(a.Layer, b.Layer)
			if !ok {
				continue
			}
			pairRule := rules.NewViaRule(via.PadstackName)
			pairRule.Add(via)

			page := room.NewDrillPage(box)
			lookup := func(p geom.Point, layer int) (room.RoomID, bool) {
				switch layer {
				case a.Layer:
					if a.Shape.Contains(p) {
						return a.ID, true
					}
				case b.Layer:
					if b.Shape.Contains(p) {
						return b.ID, true
					}
				}

				return 0, false
			}

			drills := page.CandidateDrills(board, cfg.Net, pairRule, lookup)
			if len(drills) == 0 {
				continue
			}
			d := drills[0]

			door := &room.Door{
				RoomA:       a.ID,
				RoomB:       b.ID,
				IsDrill:     true,
				LayerA:      a.Layer,
				LayerB:      b.Layer,
				ViaCostHint: via.Cost,
				Sections:    []room.Section{{Line: geom.NewLine(d.Point, d.Point)}},
			}
			graph.AddDoor(door)
		}
	}
}

// buildHeuristic collects dest's footprint per layer it spans and the
// cheapest available via cost.
func buildHeuristic(cfg Config, dest *boardmodel.Item) *heuristic.Heuristic {
	destinations := make(map[int][]geom.Box)
	box := dest.BoundingBox()
	for l := dest.FirstLayer; l <= dest.LastLayer; l++ {
		destinations[l] = append(destinations[l], box)
	}

	viaCost, _ := cfg.NetClass.ViaRule().MinCost()

	return heuristic.New(cfg.LayerCosts, destinations, viaCost)
}

// realize converts a snapped path into trace and via items, adding each to
// board in path order.
func realize(board *boardmodel.Board, cfg Config, path []maze.PointLayer) (traceIDs, viaIDs []uint32, err error) {
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		if from.Layer == to.Layer {
			it := &boardmodel.Item{
				Kind:           boardmodel.KindTrace,
				TraceFrom:      from.Point,
				TraceTo:        to.Point,
				HalfWidth:      cfg.NetClass.TraceHalfWidth(from.Layer),
				ClearanceClass: cfg.NetClass.TraceClearanceClass,
				Nets:           map[int]struct{}{cfg.Net: {}},
				FirstLayer:     from.Layer,
				LastLayer:      from.Layer,
			}
			id, addErr := board.AddItem(it)
			if addErr != nil {
				return nil, nil, addErr
			}
			traceIDs = append(traceIDs, id)

			continue
		}

		via, ok := cfg.NetClass.ViaRule().Select(from.Layer, to.Layer)
		if !ok {
			return nil, nil, fmt.Errorf("router: realize: %w", ErrNoViaAvailable)
		}

		first, last := from.Layer, to.Layer
		if first > last {
			first, last = last, first
		}

		it := &boardmodel.Item{
			Kind:           boardmodel.KindVia,
			ViaCenter:      from.Point,
			HalfWidth:      via.PadDiameter / 2,
			ClearanceClass: via.ClearanceClass,
			AttachSMD:      via.AttachSMD,
			Nets:           map[int]struct{}{cfg.Net: {}},
			FirstLayer:     first,
			LastLayer:      last,
		}
		id, addErr := board.AddItem(it)
		if addErr != nil {
			return nil, nil, addErr
		}
		viaIDs = append(viaIDs, id)
	}

	return traceIDs, viaIDs, nil
}
