package drc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/drc"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/tileshape"
)

func pad(id int, net int, box geom.Box, class int) *boardmodel.Item {
	return &boardmodel.Item{
		Kind:           boardmodel.KindPad,
		PadCenter:      box.Center(),
		PadShape:       tileshape.FromBox(box),
		Nets:           map[int]struct{}{net: {}},
		ClearanceClass: class,
	}
}

func TestCheckFlagsClearanceViolation(t *testing.T) {
	board := boardmodel.New([]boardmodel.Layer{{Name: "F.Cu", Signal: true}}, rules.NewClearanceMatrix(1, 1))
	require.NoError(t, board.ClearanceMatrix().Set(0, 0, 0, 200))

	a := pad(0, 1, geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}, 0)
	b := pad(0, 2, geom.Box{Lo: geom.Point{X: 110, Y: 0}, Hi: geom.Point{X: 210, Y: 100}}, 0)
	_, err := board.AddItem(a)
	require.NoError(t, err)
	_, err = board.AddItem(b)
	require.NoError(t, err)

	violations := drc.Check(board)
	require.Len(t, violations, 1)
	assert.Equal(t, drc.KindClearance, violations[0].Kind)
}

func TestCheckFlagsNetConflictOnOverlap(t *testing.T) {
	board := boardmodel.New([]boardmodel.Layer{{Name: "F.Cu", Signal: true}}, rules.NewClearanceMatrix(1, 1))

	a := pad(0, 1, geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}, 0)
	b := pad(0, 2, geom.Box{Lo: geom.Point{X: 50, Y: 50}, Hi: geom.Point{X: 150, Y: 150}}, 0)
	_, err := board.AddItem(a)
	require.NoError(t, err)
	_, err = board.AddItem(b)
	require.NoError(t, err)

	violations := drc.Check(board)
	require.Len(t, violations, 1)
	assert.Equal(t, drc.KindNetConflict, violations[0].Kind)
	assert.Equal(t, drc.SeverityError, violations[0].Severity)
}

func TestCheckIgnoresSameNetProximity(t *testing.T) {
	board := boardmodel.New([]boardmodel.Layer{{Name: "F.Cu", Signal: true}}, rules.NewClearanceMatrix(1, 1))
	require.NoError(t, board.ClearanceMatrix().Set(0, 0, 0, 200))

	a := pad(0, 1, geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}, 0)
	b := pad(0, 1, geom.Box{Lo: geom.Point{X: 110, Y: 0}, Hi: geom.Point{X: 210, Y: 100}}, 0)
	_, err := board.AddItem(a)
	require.NoError(t, err)
	_, err = board.AddItem(b)
	require.NoError(t, err)

	// No clearance or conflict violation between same-net items; the only
	// report is that the two untouching pads leave net 1 unconnected.
	violations := drc.Check(board)
	require.Len(t, violations, 1)
	assert.Equal(t, drc.KindUnconnectedNet, violations[0].Kind)
}

func TestCheckFlagsUnconnectedNet(t *testing.T) {
	board := boardmodel.New([]boardmodel.Layer{{Name: "F.Cu", Signal: true}}, rules.NewClearanceMatrix(1, 1))

	a := pad(0, 1, geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 100, Y: 100}}, 0)
	b := pad(0, 1, geom.Box{Lo: geom.Point{X: 100 * geom.UnitsPerMM, Y: 0}, Hi: geom.Point{X: 100*geom.UnitsPerMM + 100, Y: 100}}, 0)
	_, err := board.AddItem(a)
	require.NoError(t, err)
	_, err = board.AddItem(b)
	require.NoError(t, err)

	violations := drc.Check(board)
	require.Len(t, violations, 1)
	assert.Equal(t, drc.KindUnconnectedNet, violations[0].Kind)
}

func TestCheckFlagsKeepOutViolation(t *testing.T) {
	board := boardmodel.New([]boardmodel.Layer{{Name: "F.Cu", Signal: true}}, rules.NewClearanceMatrix(1, 1))

	keepOut := &boardmodel.Item{
		Kind:           boardmodel.KindKeepOut,
		Shape:          tileshape.FromBox(geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 1000, Y: 1000}}),
		ProhibitsTrace: true,
	}
	_, err := board.AddItem(keepOut)
	require.NoError(t, err)

	trace := &boardmodel.Item{
		Kind:      boardmodel.KindTrace,
		TraceFrom: geom.Point{X: 100, Y: 100},
		TraceTo:   geom.Point{X: 200, Y: 200},
		HalfWidth: 10,
		Nets:      map[int]struct{}{1: {}},
	}
	_, err = board.AddItem(trace)
	require.NoError(t, err)

	violations := drc.Check(board)
	require.Len(t, violations, 1)
	assert.Equal(t, drc.KindKeepOut, violations[0].Kind)
}
