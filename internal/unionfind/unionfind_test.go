package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracequest/tracequest/internal/unionfind"
)

func TestUnionFind(t *testing.T) {
	d := unionfind.New()
	for i := uint32(1); i <= 5; i++ {
		d.Add(i)
	}
	d.Union(1, 2)
	d.Union(2, 3)
	d.Union(4, 5)

	assert.True(t, d.Connected(1, 3))
	assert.False(t, d.Connected(1, 4))

	groups := d.Groups()
	assert.Len(t, groups, 2)
}
