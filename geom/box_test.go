package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracequest/tracequest/geom"
)

func TestBoxUnionIntersection(t *testing.T) {
	a := geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 10, Y: 10}}
	b := geom.Box{Lo: geom.Point{X: 5, Y: 5}, Hi: geom.Point{X: 20, Y: 20}}

	u := a.Union(b)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, u.Lo)
	assert.Equal(t, geom.Point{X: 20, Y: 20}, u.Hi)

	i := a.Intersection(b)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, i.Lo)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, i.Hi)

	disjoint := geom.Box{Lo: geom.Point{X: 100, Y: 100}, Hi: geom.Point{X: 110, Y: 110}}
	assert.True(t, a.Intersection(disjoint).IsEmpty())
	assert.False(t, a.Intersects(disjoint))
}

func TestBoxAreaIncrease(t *testing.T) {
	a := geom.Box{Lo: geom.Point{X: 0, Y: 0}, Hi: geom.Point{X: 10, Y: 10}}
	near := geom.Box{Lo: geom.Point{X: 8, Y: 8}, Hi: geom.Point{X: 12, Y: 12}}
	far := geom.Box{Lo: geom.Point{X: 1000, Y: 1000}, Hi: geom.Point{X: 1010, Y: 1010}}

	assert.Less(t, a.AreaIncrease(near), a.AreaIncrease(far))
}

func TestEmptyBox(t *testing.T) {
	e := geom.EmptyBox()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, int64(0), e.Area())

	p := geom.BoxFromPoint(geom.Point{X: 3, Y: 4})
	assert.False(t, p.IsEmpty())
	assert.True(t, p.Contains(geom.Point{X: 3, Y: 4}))
}
