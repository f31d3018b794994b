package maze

import (
	"errors"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/internal/pqueue"
	"github.com/tracequest/tracequest/room"
	"github.com/tracequest/tracequest/rules"
)

// ErrMaxIterations indicates the search aborted after exhausting its
// iteration budget without reaching a destination-side door.
var ErrMaxIterations = errors.New("maze: max iterations exceeded")

// DefaultMaxIterations bounds a single search when Config.MaxIterations is
// left zero.
const DefaultMaxIterations = 100000

// Config parameterises one search over a room graph.
type Config struct {
	Net           int
	PassNumber    int
	RipupBudget   int64
	MaxIterations int
	LayerCosts    []heuristic.LayerCost
	Heuristic     *heuristic.Heuristic
	ViaRule       *rules.ViaRule
	RipupConfig   RipupConfig
	CheckEvery    int
	Stop          func() bool
}

// Result is the outcome of one search.
type Result struct {
	Reached     bool
	Path        []PointLayer
	RippedItems []uint32
	Iterations  int
}

type stateKey struct {
	door    room.DoorID
	section int
}

// Search explores graph from every start-side target door to any
// destination-side target door, minimising g via an A* guided by
// cfg.Heuristic, and returns the winning path plus the items ripped up
// along it.
func Search(board *boardmodel.Board, graph *room.Graph, cfg Config) (*Result, error) {
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	checkEvery := cfg.CheckEvery
	if checkEvery <= 0 {
		checkEvery = 1000
	}

	queue := pqueue.New(64)
	ripped := make(map[stateKey][]uint32)

	for _, d := range graph.Doors() {
		if !d.IsTarget || !d.StartSide {
			continue
		}
		startRoom, ok := graph.Room(d.RoomA)
		if !ok {
			continue
		}
		for si, sec := range d.Sections {
			e := queue.Acquire()
			e.Door = uint32(d.ID)
			e.Section = si
			e.Room = uint32(d.RoomA)
			e.G = 0
			entry := sec.Line.From
			e.EntryX, e.EntryY = entry.X, entry.Y
			e.F = cfg.Heuristic.Distance(entry, startRoom.Layer)
			queue.Push(e)
		}
	}

	iterations := 0
	for queue.Len() > 0 {
		iterations++
		if iterations > maxIter {
			return &Result{Reached: false, Iterations: iterations}, ErrMaxIterations
		}
		if iterations%checkEvery == 0 && cfg.Stop != nil && cfg.Stop() {
			return &Result{Reached: false, Iterations: iterations}, nil
		}

		e := queue.Pop()
		door, ok := graph.Door(room.DoorID(e.Door))
		if !ok || e.Section >= len(door.Sections) {
			queue.Release(e)

			continue
		}
		section := &door.Sections[e.Section]
		if section.Occupied {
			queue.Release(e)

			continue
		}

		section.Occupied = true
		section.BackDoor = room.DoorID(e.BackDoor)
		section.BackSection = e.BackSection
		section.EntryPoint = geom.Point{X: e.EntryX, Y: e.EntryY}
		section.G = e.G
		if e.RoomRipped {
			section.Ripped = ripped[stateKey{door.ID, e.Section}]
		}

		if door.DestSide {
			path := backtrack(graph, door.ID, e.Section)
			queue.Release(e)

			return &Result{Reached: true, Path: path, RippedItems: section.Ripped, Iterations: iterations}, nil
		}

		poppedG := e.G
		poppedSection := e.Section
		poppedRoom := e.Room

		otherRoomID := otherSide(door, room.RoomID(poppedRoom))
		queue.Release(e)
		if otherRoomID == 0 {
			continue
		}
		otherRoom, ok := graph.Room(otherRoomID)
		if !ok {
			continue
		}

		currentPoint := section.EntryPoint
		currentLayer := roomLayer(graph, room.RoomID(poppedRoom))
		parentRipped := section.Ripped

		for _, ndID := range otherRoom.Doors {
			if ndID == door.ID {
				continue
			}
			nd, ok := graph.Door(ndID)
			if !ok {
				continue
			}
			for si := range nd.Sections {
				if nd.Sections[si].Occupied {
					continue
				}
				entryPoint := nd.Sections[si].EntryPointNear(currentPoint)
				newLayer := otherRoom.Layer
				if nd.IsDrill {
					if currentLayer == nd.LayerA {
						newLayer = nd.LayerB
					} else {
						newLayer = nd.LayerA
					}
				}
				if board.IsProhibited(entryPoint, newLayer, cfg.Net) {
					continue
				}

				delta, segRipped, blocked := segmentCost(board, cfg, currentPoint, entryPoint, currentLayer, newLayer, nd)
				if blocked {
					continue
				}
				newG := poppedG + delta
				if len(segRipped) > 0 && newG > cfg.RipupBudget {
					continue
				}

				ne := queue.Acquire()
				ne.Door = uint32(ndID)
				ne.Section = si
				ne.Room = uint32(otherRoomID)
				ne.G = newG
				ne.BackDoor = uint32(door.ID)
				ne.BackSection = poppedSection
				ne.EntryX, ne.EntryY = entryPoint.X, entryPoint.Y
				ne.RoomRipped = len(segRipped) > 0
				ne.F = newG + cfg.Heuristic.Distance(entryPoint, newLayer)

				if ne.RoomRipped {
					ripped[stateKey{ndID, si}] = append(append([]uint32{}, parentRipped...), segRipped...)
				}
				queue.Push(ne)
			}
		}
	}

	return &Result{Reached: false, Iterations: iterations}, nil
}

// segmentCost computes the incremental g-cost of moving from (from, fromLayer)
// to (to, toLayer) across door nd, plus any ripup cost accrued from
// routable obstacles in the way. blocked is true if a non-ripupable
// obstacle makes the move illegal.
func segmentCost(board *boardmodel.Board, cfg Config, from, to geom.Point, fromLayer, toLayer int, nd *room.Door) (delta int64, ripped []uint32, blocked bool) {
	if nd.IsDrill {
		via, ok := cfg.ViaRule.Select(fromLayer, toLayer)
		if !ok {
			return 0, nil, true
		}

		return via.Cost, nil, false
	}

	lc := cfg.LayerCosts[fromLayer]
	dx := geom.AbsInt64(to.X - from.X)
	dy := geom.AbsInt64(to.Y - from.Y)
	delta = lc.H*dx + lc.V*dy

	box := geom.BoxFromPoints(from, to)
	for _, obstacle := range board.ObstaclesForTrace(cfg.Net, box, fromLayer, fromLayer) {
		if !Ripupable(obstacle) {
			return 0, nil, true
		}
		delta += Cost(obstacle, cfg.PassNumber, cfg.RipupConfig)
		ripped = append(ripped, obstacle.ID)
	}

	return delta, ripped, false
}

// otherSide returns the room reached by crossing door from cameFrom. A
// target door (RoomB == 0) does not lead anywhere new - it marks where the
// path enters or leaves the graph - so crossing it leaves cameFrom
// unchanged instead of "crossing into room 0".
func otherSide(door *room.Door, cameFrom room.RoomID) room.RoomID {
	if door.RoomB == 0 {
		return door.RoomA
	}
	if door.RoomA == cameFrom {
		return door.RoomB
	}

	return door.RoomA
}

func roomLayer(graph *room.Graph, id room.RoomID) int {
	if r, ok := graph.Room(id); ok {
		return r.Layer
	}

	return 0
}

// backtrack walks the back-pointer chain from (startDoor, startSection) to
// an initial state (BackDoor == 0) and returns the path in forward order.
func backtrack(graph *room.Graph, startDoor room.DoorID, startSection int) []PointLayer {
	var rev []PointLayer
	d, s := startDoor, startSection

	for {
		door, ok := graph.Door(d)
		if !ok || s >= len(door.Sections) {
			break
		}
		sec := door.Sections[s]
		rev = append(rev, PointLayer{Point: sec.EntryPoint, Layer: roomLayer(graph, door.RoomA)})
		if sec.BackDoor == 0 {
			break
		}
		d, s = sec.BackDoor, sec.BackSection
	}

	path := make([]PointLayer, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}
