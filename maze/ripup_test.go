package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracequest/tracequest/boardmodel"
	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/maze"
)

func traceItem(from, to geom.Point, fixed boardmodel.FixedState) *boardmodel.Item {
	return &boardmodel.Item{
		Kind:      boardmodel.KindTrace,
		Fixed:     fixed,
		TraceFrom: from,
		TraceTo:   to,
		HalfWidth: geom.UnitsPerMM / 10,
		Nets:      map[int]struct{}{2: {}},
	}
}

func TestCostGrowsWithPassNumberAndLength(t *testing.T) {
	cfg := maze.DefaultRipupConfig()
	short := traceItem(geom.Point{X: 0, Y: 0}, geom.Point{X: geom.UnitsPerMM, Y: 0}, boardmodel.NotFixed)
	long := traceItem(geom.Point{X: 0, Y: 0}, geom.Point{X: 10 * geom.UnitsPerMM, Y: 0}, boardmodel.NotFixed)

	c1 := maze.Cost(short, 1, cfg)
	c2 := maze.Cost(short, 2, cfg)
	assert.Greater(t, c2, c1)

	cLong := maze.Cost(long, 1, cfg)
	assert.Greater(t, cLong, c1)
}

func TestCostIsCappedAtLimit(t *testing.T) {
	cfg := maze.RipupConfig{Base: 10, Multiplier: 1000, Limit: 50}
	it := traceItem(geom.Point{X: 0, Y: 0}, geom.Point{X: 100 * geom.UnitsPerMM, Y: 0}, boardmodel.NotFixed)

	assert.Equal(t, int64(50), maze.Cost(it, 5, cfg))
}

func TestRipupableExcludesFixedItems(t *testing.T) {
	routable := traceItem(geom.Point{X: 0, Y: 0}, geom.Point{X: geom.UnitsPerMM, Y: 0}, boardmodel.NotFixed)
	userFixed := traceItem(geom.Point{X: 0, Y: 0}, geom.Point{X: geom.UnitsPerMM, Y: 0}, boardmodel.UserFixed)
	pad := &boardmodel.Item{Kind: boardmodel.KindPad}

	assert.True(t, maze.Ripupable(routable))
	assert.False(t, maze.Ripupable(userFixed))
	assert.False(t, maze.Ripupable(pad))
}
