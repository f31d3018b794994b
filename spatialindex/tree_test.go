package spatialindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/spatialindex"
)

func b(lx, ly, hx, hy int64) geom.Box {
	return geom.Box{Lo: geom.Point{X: lx, Y: ly}, Hi: geom.Point{X: hx, Y: hy}}
}

func TestInsertAndOverlapping(t *testing.T) {
	tree := spatialindex.New()
	tree.Insert(1, 0, b(0, 0, 10, 10), spatialindex.LayerSpan{First: 0, Last: 0})
	tree.Insert(2, 0, b(20, 20, 30, 30), spatialindex.LayerSpan{First: 0, Last: 1})
	tree.Insert(3, 0, b(5, 5, 15, 15), spatialindex.LayerSpan{First: 1, Last: 1})

	require.Equal(t, 3, tree.Len())

	hits := tree.Overlapping(b(4, 4, 6, 6), -1)
	ids := map[uint32]bool{}
	for _, h := range hits {
		ids[h.ItemID] = true
	}
	assert.True(t, ids[1])
	assert.True(t, ids[3])
	assert.False(t, ids[2])
}

func TestOverlappingLayerFilter(t *testing.T) {
	tree := spatialindex.New()
	tree.Insert(1, 0, b(0, 0, 10, 10), spatialindex.LayerSpan{First: 0, Last: 0})

	assert.Len(t, tree.Overlapping(b(0, 0, 1, 1), 0), 1)
	assert.Len(t, tree.Overlapping(b(0, 0, 1, 1), 1), 0)
}

func TestRemoveRestoresQueries(t *testing.T) {
	tree := spatialindex.New()
	box := b(0, 0, 10, 10)
	tree.Insert(7, 0, box, spatialindex.LayerSpan{First: 0, Last: 0})
	require.Len(t, tree.Overlapping(box, -1), 1)

	removed := tree.Remove(7)
	assert.Equal(t, 1, removed)
	assert.Empty(t, tree.Overlapping(box, -1))

	// Round-trip: re-inserting identical geometry restores the query result.
	tree.Insert(7, 0, box, spatialindex.LayerSpan{First: 0, Last: 0})
	assert.Len(t, tree.Overlapping(box, -1), 1)
}

func TestEmptyBoxIgnored(t *testing.T) {
	tree := spatialindex.New()
	tree.Insert(1, 0, geom.EmptyBox(), spatialindex.LayerSpan{})
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Overlapping(geom.EmptyBox(), -1))
}

func TestManyInsertionsStayConsistent(t *testing.T) {
	tree := spatialindex.New()
	for i := 0; i < 200; i++ {
		x := int64(i * 5)
		tree.Insert(uint32(i+1), 0, b(x, 0, x+4, 4), spatialindex.LayerSpan{First: 0, Last: 0})
	}
	require.Equal(t, 200, tree.Len())

	hits := tree.Overlapping(b(500, 0, 505, 4), -1)
	assert.NotEmpty(t, hits)
}
