// Package unionfind provides a disjoint-set (union-find) data structure with
// path compression and union by rank, over uint32 keys.
//
// Grounded on github.com/katalvlaran/lvlath's prim_kruskal/kruskal.go, which
// inlines exactly this structure (there, keyed by string vertex IDs) to
// build a minimum spanning tree; this package extracts the same two-map,
// path-compressed, rank-balanced algorithm as a standalone reusable type so
// both boardmodel.ConnectedComponents and batch's MST-based net ordering can
// share one implementation instead of duplicating it inline.
package unionfind

// DSU is a disjoint-set forest over uint32 keys.
type DSU struct {
	parent map[uint32]uint32
	rank   map[uint32]int
}

// New returns an empty DSU.
func New() *DSU {
	return &DSU{parent: make(map[uint32]uint32), rank: make(map[uint32]int)}
}

// Add registers id as its own singleton set if not already present.
func (d *DSU) Add(id uint32) {
	if _, ok := d.parent[id]; !ok {
		d.parent[id] = id
		d.rank[id] = 0
	}
}

// Find returns the representative of id's set, path-compressing along the
// way. id must have been added via Add first; an unregistered id is treated
// as its own singleton.
func (d *DSU) Find(id uint32) uint32 {
	d.Add(id)
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets containing a and b.
func (d *DSU) Union(a, b uint32) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b uint32) bool {
	return d.Find(a) == d.Find(b)
}

// Groups returns the current partition as representative -> members.
func (d *DSU) Groups() map[uint32][]uint32 {
	groups := make(map[uint32][]uint32, len(d.parent))
	for id := range d.parent {
		root := d.Find(id)
		groups[root] = append(groups[root], id)
	}

	return groups
}
