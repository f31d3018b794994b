package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/maze"
	"github.com/tracequest/tracequest/router"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/tileshape"
)

func newTestBoard(t *testing.T) (*boardmodel.Board, *rules.NetClass) {
	t.Helper()
	layers := []boardmodel.Layer{{Name: "F.Cu", Signal: true}, {Name: "B.Cu", Signal: true}}
	board := boardmodel.New(layers, rules.NewClearanceMatrix(1, 2))

	nc := rules.NewNetClass("default")
	nc.SetTraceHalfWidth(0, 500)
	nc.SetTraceHalfWidth(1, 500)
	nc.ActiveLayers = nc.ActiveLayers.WithLayer(0).WithLayer(1)
	via := rules.NewViaRule("default-via")
	via.Add(rules.ViaInfo{PadstackName: "v0", FirstLayer: 0, LastLayer: 1, DrillDiameter: 300, PadDiameter: 600, Cost: 1000})
	nc.Via = via

	return board, nc
}

func pad(net int, center geom.Point, layer int) *boardmodel.Item {
	box := geom.Box{Lo: geom.Point{X: center.X - 500, Y: center.Y - 500}, Hi: geom.Point{X: center.X + 500, Y: center.Y + 500}}

	return &boardmodel.Item{
		Kind:       boardmodel.KindPad,
		PadCenter:  center,
		PadShape:   tileshape.FromBox(box),
		Nets:       map[int]struct{}{net: {}},
		FirstLayer: layer,
		LastLayer:  layer,
	}
}

func TestConnectRoutesDirectSameLayerPath(t *testing.T) {
	board, nc := newTestBoard(t)
	source := pad(1, geom.Point{X: 0, Y: 0}, 0)
	dest := pad(1, geom.Point{X: 5 * geom.UnitsPerMM, Y: 0}, 0)
	_, err := board.AddItem(source)
	require.NoError(t, err)
	_, err = board.AddItem(dest)
	require.NoError(t, err)

	cfg := router.Config{
		Net:         1,
		NetClass:    nc,
		LayerCosts:  []heuristic.LayerCost{{H: 1, V: 1}, {H: 1, V: 1}},
		RipupConfig: maze.DefaultRipupConfig(),
		RipupBudget: 100000,
		AnglePolicy: maze.AngleNone,
	}

	result, err := router.Connect(board, source, dest, cfg)
	require.NoError(t, err)
	require.True(t, result.Routed)
	assert.NotEmpty(t, result.TraceIDs)
	assert.Empty(t, result.ViaIDs)
}

func TestConnectRejectsCrossNetPads(t *testing.T) {
	board, nc := newTestBoard(t)
	source := pad(1, geom.Point{X: 0, Y: 0}, 0)
	dest := pad(2, geom.Point{X: 5 * geom.UnitsPerMM, Y: 0}, 0)
	_, err := board.AddItem(source)
	require.NoError(t, err)
	_, err = board.AddItem(dest)
	require.NoError(t, err)

	cfg := router.Config{Net: 1, NetClass: nc}
	_, err = router.Connect(board, source, dest, cfg)
	assert.ErrorIs(t, err, router.ErrCrossNetConnection)
}
