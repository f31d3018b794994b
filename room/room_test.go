package room_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/room"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/tileshape"
)

func newBoard() *boardmodel.Board {
	layers := []boardmodel.Layer{{Name: "F.Cu", Signal: true}}

	return boardmodel.New(layers, rules.NewClearanceMatrix(1, 1))
}

func TestCompleteRoomNoObstaclesBecomesComplete(t *testing.T) {
	board := newBoard()
	required := geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}
	candidate := geom.Box{Lo: geom.Point{X: -10000, Y: -10000}, Hi: geom.Point{X: 10000, Y: 10000}}
	r := room.NewIncompleteRoom(1, 0, candidate, required)

	require.NoError(t, room.CompleteRoom(board, r))
	assert.True(t, r.Complete)
	assert.True(t, r.Shape.BoundingBox().ContainsBox(required))
}

func TestCompleteRoomCutsAroundObstacle(t *testing.T) {
	board := newBoard()
	obstacle := &boardmodel.Item{
		Kind:       boardmodel.KindKeepOut,
		FirstLayer: 0,
		LastLayer:  0,
		Shape:      tileshape.FromBox(geom.Box{Lo: geom.Point{X: 2000, Y: -10000}, Hi: geom.Point{X: 10000, Y: 10000}}),
		ProhibitsTrace: true,
	}
	_, err := board.AddItem(obstacle)
	require.NoError(t, err)

	required := geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}
	candidate := geom.Box{Lo: geom.Point{X: -10000, Y: -10000}, Hi: geom.Point{X: 10000, Y: 10000}}
	r := room.NewIncompleteRoom(99, 0, candidate, required)

	require.NoError(t, room.CompleteRoom(board, r))
	assert.True(t, r.Complete)
	assert.LessOrEqual(t, r.Shape.BoundingBox().Hi.X, int64(2000))
}

func TestGenerateDoorsTargetDoorMarksSourceAndDest(t *testing.T) {
	board := newBoard()
	g := room.NewGraph()

	src := &boardmodel.Item{
		Kind: boardmodel.KindPad, FirstLayer: 0, LastLayer: 0,
		Nets: map[int]struct{}{1: {}}, PadCenter: geom.Point{X: 0, Y: 0},
		PadShape: tileshape.FromBox(geom.BoxFromPoint(geom.Point{X: 0, Y: 0}).Expand(100)),
	}
	srcID, err := board.AddItem(src)
	require.NoError(t, err)

	r := room.NewIncompleteRoom(1, 0,
		geom.Box{Lo: geom.Point{X: -5000, Y: -5000}, Hi: geom.Point{X: 5000, Y: 5000}},
		geom.Box{Lo: geom.Point{X: -100, Y: -100}, Hi: geom.Point{X: 100, Y: 100}})
	require.NoError(t, room.CompleteRoom(board, r))
	g.AddRoom(r)

	room.GenerateDoors(g, board, r, srcID, 0)

	doors := g.Doors()
	require.Len(t, doors, 1)
	assert.True(t, doors[0].IsTarget)
	assert.True(t, doors[0].StartSide)
	assert.False(t, doors[0].DestSide)
}

func TestGenerateDoorsSkipsAPointTouchBetweenRooms(t *testing.T) {
	board := newBoard()
	g := room.NewGraph()

	a := room.NewIncompleteRoom(1, 0,
		geom.Box{Lo: geom.Point{X: -5000, Y: -5000}, Hi: geom.Point{X: 0, Y: 0}},
		geom.Box{Lo: geom.Point{X: -100, Y: -100}, Hi: geom.Point{X: -50, Y: -50}})
	require.NoError(t, room.CompleteRoom(board, a))
	g.AddRoom(a)

	b := room.NewIncompleteRoom(1, 0,
		geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 5000, Y: 5000}},
		geom.Box{Lo: geom.Point{X: 50, Y: 50}, Hi: geom.Point{X: 100, Y: 100}})
	require.NoError(t, room.CompleteRoom(board, b))
	g.AddRoom(b)

	room.GenerateDoors(g, board, b, 0, 0)

	assert.Empty(t, g.Doors())
}

func TestGenerateDoorsRoomToRoomCarriesItsDimension(t *testing.T) {
	board := newBoard()
	g := room.NewGraph()

	a := room.NewIncompleteRoom(1, 0,
		geom.Box{Lo: geom.Point{X: -5000, Y: -5000}, Hi: geom.Point{X: 0, Y: 5000}},
		geom.Box{Lo: geom.Point{X: -100, Y: -100}, Hi: geom.Point{X: -50, Y: 100}})
	require.NoError(t, room.CompleteRoom(board, a))
	g.AddRoom(a)

	b := room.NewIncompleteRoom(1, 0,
		geom.Box{Lo: geom.Point{X: 0, Y: -5000}, Hi: geom.Point{X: 5000, Y: 5000}},
		geom.Box{Lo: geom.Point{X: 50, Y: -100}, Hi: geom.Point{X: 100, Y: 100}})
	require.NoError(t, room.CompleteRoom(board, b))
	g.AddRoom(b)

	room.GenerateDoors(g, board, b, 0, 0)

	doors := g.Doors()
	require.Len(t, doors, 1)
	assert.False(t, doors[0].IsTarget)
	assert.Equal(t, 1, doors[0].Dim)
}
