package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/rules"
)

func TestClearanceMatrixSetGet(t *testing.T) {
	m := rules.NewClearanceMatrix(2, 2)
	require.NoError(t, m.Set(0, 1, 0, 2000))

	assert.Equal(t, int64(2000), m.Clearance(0, 1, 0, false))
	assert.Equal(t, int64(2000), m.Clearance(1, 0, 0, false)) // symmetric
	assert.Equal(t, int64(2000+rules.SafetyMargin), m.Clearance(0, 1, 0, true))
}

func TestClearanceMatrixRejectsOddOrNegative(t *testing.T) {
	m := rules.NewClearanceMatrix(2, 1)
	err := m.Set(0, 0, 0, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrOddClearance)

	err = m.Set(0, 0, 0, -2)
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrNegativeClearance)
}

func TestClearanceMatrixRowMax(t *testing.T) {
	m := rules.NewClearanceMatrix(3, 1)
	require.NoError(t, m.Set(0, 0, 0, 2000))
	require.NoError(t, m.Set(0, 1, 0, 4000))
	require.NoError(t, m.Set(0, 2, 0, 1000))

	assert.Equal(t, int64(4000), m.RowMax(0, 0))
}

func TestViaRuleSelect(t *testing.T) {
	r := rules.NewViaRule("standard")
	r.Add(rules.ViaInfo{PadstackName: "thru", FirstLayer: 0, LastLayer: 3, Cost: 300})
	r.Add(rules.ViaInfo{PadstackName: "blind01", FirstLayer: 0, LastLayer: 1, Cost: 500})

	v, ok := r.Select(0, 1)
	require.True(t, ok)
	assert.Equal(t, "thru", v.PadstackName) // priority order: thru listed first and spans it

	_, ok = r.Select(0, 5)
	assert.False(t, ok)

	cost, ok := r.MinCost()
	require.True(t, ok)
	assert.Equal(t, int64(300), cost)
}

func TestNetClassHalfWidthFallback(t *testing.T) {
	nc := rules.NewNetClass("default")
	nc.SetTraceHalfWidth(0, 500)
	nc.SetTraceHalfWidth(1, 750)

	assert.Equal(t, int64(500), nc.TraceHalfWidth(0))
	assert.Equal(t, int64(750), nc.TraceHalfWidth(5)) // falls back to max configured
}

func TestLayerMask(t *testing.T) {
	var mask rules.LayerMask
	mask = mask.WithLayer(0).WithLayer(3)
	assert.True(t, mask.HasLayer(0))
	assert.True(t, mask.HasLayer(3))
	assert.False(t, mask.HasLayer(1))
}
