package room

import (
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/tileshape"
)

// RoomID addresses a room within a Graph's arena.
type RoomID uint32

// DoorID addresses a door within a Graph's arena.
type DoorID uint32

// Room is one convex region of free space (or, before completion, a
// candidate region still being cut down) on a single layer for a single net.
type Room struct {
	ID       RoomID
	Net      int
	Layer    int
	Shape    tileshape.Tile
	Complete bool
	Doors    []DoorID

	// required is the shape that must remain inside Shape through every
	// cut - the source/destination item's own box. Only meaningful while
	// Complete is false.
	required tileshape.Tile
}

// Section is one subdivision of a door's geometry, the unit the maze search
// actually pushes onto its frontier. A 1-D door may carry several sections
// so two concurrent paths can enter it at different points without
// colliding; a 2-D (or point) door always has exactly one section spanning
// its whole shape.
type Section struct {
	Line     geom.Line // degenerate (From==To) for a point-shaped door
	Occupied bool
	// BackDoor/BackSection/EntryPoint/G/Ripped are filled in by the maze
	// search as it explores; zero value means "unvisited".
	BackDoor    DoorID
	BackSection int
	EntryPoint  geom.Point
	G           int64
	Ripped      []uint32 // board item ids ripped up to reach this section
}

// EntryPointNear returns the point a path entering this section would use:
// the section midpoint, or whichever endpoint is closest to ref when that is
// nearer than the midpoint.
func (s Section) EntryPointNear(ref geom.Point) geom.Point {
	if s.Line.From == s.Line.To {
		return s.Line.From
	}
	mid := geom.Point{X: (s.Line.From.X + s.Line.To.X) / 2, Y: (s.Line.From.Y + s.Line.To.Y) / 2}
	dMid := geom.ManhattanDistance(mid, ref)
	dFrom := geom.ManhattanDistance(s.Line.From, ref)
	dTo := geom.ManhattanDistance(s.Line.To, ref)
	if dFrom < dMid && dFrom <= dTo {
		return s.Line.From
	}
	if dTo < dMid && dTo < dFrom {
		return s.Line.To
	}

	return mid
}

// Door joins two rooms (or one room to a routing target) across a shared
// shape. A target door has RoomB == 0 and StartSide or DestSide set instead;
// a drill door spans two different layers of the same (x, y) location.
type Door struct {
	ID       DoorID
	RoomA    RoomID
	RoomB    RoomID // 0 for a target door
	Shape    tileshape.Tile
	Sections []Section
	Dim      int // dimension of Shape: 2 for an area overlap, 1 for an edge-on-edge touch

	IsTarget  bool
	StartSide bool
	DestSide  bool
	TargetNet int
	ItemID    uint32 // the pad/via a target door was generated for

	IsDrill     bool
	LayerA      int
	LayerB      int
	ViaCostHint int64
}
