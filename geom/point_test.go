package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/geom"
)

func TestSideOf(t *testing.T) {
	w := geom.Vector{X: 10, Y: 0}

	assert.Equal(t, geom.Left, geom.SideOf(geom.Vector{X: 0, Y: 5}, w))
	assert.Equal(t, geom.Right, geom.SideOf(geom.Vector{X: 0, Y: -5}, w))
	assert.Equal(t, geom.Collinear, geom.SideOf(geom.Vector{X: 5, Y: 0}, w))
}

func TestValidate(t *testing.T) {
	require.NoError(t, geom.Validate(geom.Point{X: 100, Y: -100}))

	err := geom.Validate(geom.Point{X: geom.CritInt + 1, Y: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, geom.ErrOutOfRange)
}

func TestManhattanDistance(t *testing.T) {
	d := geom.ManhattanDistance(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: -4})
	assert.Equal(t, int64(7), d)
}
