package room

import (
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/tileshape"
)

// GenerateDoors builds the doors attached to a freshly completed room: a
// target door for every item on the room's net that overlaps it (marked
// start- or destination-side according to whether it matches sourceItemID
// or destItemID), and a room-to-room door for every other complete room in
// the graph whose shape intersects the new one.
func GenerateDoors(g *Graph, board *boardmodel.Board, newRoom *Room, sourceItemID, destItemID uint32) {
	for _, it := range board.ItemsByNet(newRoom.Net) {
		if !it.LayerOverlaps(newRoom.Layer, newRoom.Layer) {
			continue
		}
		if !newRoom.Shape.BoundingBox().Intersects(it.BoundingBox()) {
			continue
		}

		shape := tileshape.FromBox(it.BoundingBox())
		door := &Door{
			RoomA:     newRoom.ID,
			Shape:     shape,
			Dim:       shape.Dim(),
			IsTarget:  true,
			TargetNet: newRoom.Net,
			ItemID:    it.ID,
			StartSide: it.ID == sourceItemID,
			DestSide:  it.ID == destItemID,
		}
		door.Sections = []Section{{Line: diagonalLine(door.Shape)}}
		g.AddDoor(door)
	}

	for _, other := range g.Rooms() {
		if other.ID == newRoom.ID || !other.Complete || other.Layer != newRoom.Layer {
			continue
		}

		inter := other.Shape.Intersection(newRoom.Shape)
		dim := inter.Dim()
		if dim <= 0 {
			// dim < 0: disjoint. dim == 0: a single point touch, not wide
			// enough for a trace to cross - neither room can actually
			// hand off through it.
			continue
		}

		door := &Door{
			RoomA: other.ID,
			RoomB: newRoom.ID,
			Shape: inter,
			Dim:   dim,
		}
		door.Sections = []Section{{Line: diagonalLine(inter)}}
		g.AddDoor(door)
	}
}

// diagonalLine returns the line from a shape's bounding box Lo corner to its
// Hi corner (degenerate only for a point-shaped box), used as the single
// representative section of a door regardless of the door's true dimension.
func diagonalLine(t tileshape.Tile) geom.Line {
	box := t.BoundingBox()
	if box.IsEmpty() {
		return geom.Line{}
	}

	return geom.NewLine(box.Lo, box.Hi)
}
