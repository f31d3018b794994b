package boardmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/tileshape"
)

func newTestBoard() *boardmodel.Board {
	layers := []boardmodel.Layer{{Name: "F.Cu", Signal: true}, {Name: "B.Cu", Signal: true}}
	clearance := rules.NewClearanceMatrix(1, 2)

	return boardmodel.New(layers, clearance)
}

func pad(net int, center geom.Point, layer int) *boardmodel.Item {
	return &boardmodel.Item{
		Kind:       boardmodel.KindPad,
		Nets:       map[int]struct{}{net: {}},
		FirstLayer: layer,
		LastLayer:  layer,
		PadCenter:  center,
		PadShape:   tileshape.FromBox(geom.BoxFromPoint(center).Expand(500)),
	}
}

func TestAddItemAssignsIncreasingIDs(t *testing.T) {
	board := newTestBoard()
	id1, err := board.AddItem(pad(1, geom.Point{X: 0, Y: 0}, 0))
	require.NoError(t, err)
	id2, err := board.AddItem(pad(1, geom.Point{X: 1000, Y: 0}, 0))
	require.NoError(t, err)

	assert.Less(t, id1, id2)
}

func TestAddItemRejectsEmptyBox(t *testing.T) {
	board := newTestBoard()
	it := &boardmodel.Item{Kind: boardmodel.KindKeepOut, Shape: tileshape.EmptyTile()}
	_, err := board.AddItem(it)
	require.Error(t, err)
	assert.ErrorIs(t, err, boardmodel.ErrEmptyBoundingBox)
}

func TestRemoveItemRoundTrip(t *testing.T) {
	board := newTestBoard()
	it := pad(1, geom.Point{X: 0, Y: 0}, 0)
	id, err := board.AddItem(it)
	require.NoError(t, err)

	box := it.BoundingBox()
	before := board.ObstaclesForTrace(2, box, 0, 0)
	assert.Len(t, before, 1)

	assert.True(t, board.RemoveItem(id))
	assert.False(t, board.RemoveItem(id)) // stale id is a no-op

	after := board.ObstaclesForTrace(2, box, 0, 0)
	assert.Empty(t, after)

	// Round-trip: re-adding identical geometry restores the query result.
	_, err = board.AddItem(pad(1, geom.Point{X: 0, Y: 0}, 0))
	require.NoError(t, err)
	assert.Len(t, board.ObstaclesForTrace(2, box, 0, 0), 1)
}

func TestObstaclesForTraceExcludesSameNet(t *testing.T) {
	board := newTestBoard()
	_, err := board.AddItem(pad(1, geom.Point{X: 0, Y: 0}, 0))
	require.NoError(t, err)

	box := geom.Box{Lo: geom.Point{X: -600, Y: -600}, Hi: geom.Point{X: 600, Y: 600}}
	assert.Empty(t, board.ObstaclesForTrace(1, box, 0, 0))
	assert.Len(t, board.ObstaclesForTrace(2, box, 0, 0), 1)
}

func TestIsProhibited(t *testing.T) {
	board := newTestBoard()
	keepOut := &boardmodel.Item{
		Kind:           boardmodel.KindKeepOut,
		FirstLayer:     0,
		LastLayer:      0,
		Shape:          tileshape.FromBox(geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 1000, Y: 1000}}),
		ProhibitsTrace: true,
	}
	_, err := board.AddItem(keepOut)
	require.NoError(t, err)

	assert.True(t, board.IsProhibited(geom.Point{X: 500, Y: 500}, 0, 7))
	assert.False(t, board.IsProhibited(geom.Point{X: 5000, Y: 5000}, 0, 7))
}

func TestIsProhibitedNetScopeExemption(t *testing.T) {
	board := newTestBoard()
	keepOut := &boardmodel.Item{
		Kind:           boardmodel.KindKeepOut,
		FirstLayer:     0,
		LastLayer:      0,
		Shape:          tileshape.FromBox(geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 1000, Y: 1000}}),
		ProhibitsTrace: true,
		NetScope:       9,
	}
	_, err := board.AddItem(keepOut)
	require.NoError(t, err)

	assert.False(t, board.IsProhibited(geom.Point{X: 500, Y: 500}, 0, 9))
	assert.True(t, board.IsProhibited(geom.Point{X: 500, Y: 500}, 0, 1))
}

func TestConnectedComponents(t *testing.T) {
	board := newTestBoard()
	_, err := board.AddItem(pad(1, geom.Point{X: 0, Y: 0}, 0))
	require.NoError(t, err)
	_, err = board.AddItem(pad(1, geom.Point{X: 400, Y: 0}, 0)) // overlaps first pad
	require.NoError(t, err)
	_, err = board.AddItem(pad(1, geom.Point{X: 100000, Y: 0}, 0)) // far away, separate component
	require.NoError(t, err)

	components := board.ConnectedComponents(1)
	assert.Len(t, components, 2)
}

func TestIsObstacleSharedNet(t *testing.T) {
	a := pad(1, geom.Point{X: 0, Y: 0}, 0)
	b := pad(1, geom.Point{X: 10, Y: 10}, 0)
	c := pad(2, geom.Point{X: 10, Y: 10}, 0)

	assert.False(t, a.IsObstacle(b))
	assert.True(t, a.IsObstacle(c))
}
