package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/batch"
	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/heuristic"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/session"
	"github.com/tracequest/tracequest/tileshape"
)

type recordingObserver struct {
	traces  int
	vias    int
	ripups  int
	failed  int
}

func (r *recordingObserver) TraceAdded(batch.Connection, uint32)    { r.traces++ }
func (r *recordingObserver) ViaAdded(batch.Connection, uint32)      { r.vias++ }
func (r *recordingObserver) Ripup(batch.Connection, uint32)         { r.ripups++ }
func (r *recordingObserver) RoutingFailed(batch.Connection, int)    { r.failed++ }

func newTestBoard(t *testing.T) *boardmodel.Board {
	t.Helper()
	layers := []boardmodel.Layer{{Name: "F.Cu", Signal: true}}
	board := boardmodel.New(layers, rules.NewClearanceMatrix(1, 1))

	nc := rules.NewNetClass("default")
	nc.SetTraceHalfWidth(0, 500)
	nc.ActiveLayers = nc.ActiveLayers.WithLayer(0)
	nc.Via = rules.NewViaRule("default-via")
	board.RegisterNetClass(nc)
	board.RegisterNet(rules.Net{NetNumber: 1, Name: "NET1", ClassName: "default"})

	return board
}

func pad(net int, center geom.Point) *boardmodel.Item {
	box := geom.Box{Lo: geom.Point{X: center.X - 500, Y: center.Y - 500}, Hi: geom.Point{X: center.X + 500, Y: center.Y + 500}}

	return &boardmodel.Item{
		Kind:      boardmodel.KindPad,
		PadCenter: center,
		PadShape:  tileshape.FromBox(box),
		Nets:      map[int]struct{}{net: {}},
	}
}

func TestRunNotifiesObserversOfRoutedConnection(t *testing.T) {
	board := newTestBoard(t)
	a := pad(1, geom.Point{X: 0, Y: 0})
	b := pad(1, geom.Point{X: 5 * geom.UnitsPerMM, Y: 0})
	aID, err := board.AddItem(a)
	require.NoError(t, err)
	bID, err := board.AddItem(b)
	require.NoError(t, err)

	sess := session.New(board)
	obs := &recordingObserver{}
	sess.Observe(obs)

	cfg := batch.DefaultConfig()
	cfg.LayerCosts = []heuristic.LayerCost{{H: 1, V: 1}}
	cfg.MaxPasses = 3

	result, err := sess.Run([]batch.Connection{{Net: 1, FromItemID: aID, ToItemID: bID}}, cfg)
	require.NoError(t, err)
	assert.True(t, result.Routed())
	assert.Positive(t, obs.traces)
	assert.Zero(t, obs.failed)
}

func TestRunRejectsEmptyConnectionList(t *testing.T) {
	board := newTestBoard(t)
	sess := session.New(board)

	_, err := sess.Run(nil, batch.DefaultConfig())
	assert.ErrorIs(t, err, session.ErrNoConnections)
}
