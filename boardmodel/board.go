package boardmodel

import (
	"fmt"
	"sync"

	"github.com/tracequest/tracequest/geom"
	"github.com/tracequest/tracequest/internal/unionfind"
	"github.com/tracequest/tracequest/rules"
	"github.com/tracequest/tracequest/spatialindex"
)

// Layer describes one layer of the board's layer structure.
type Layer struct {
	Name   string
	Signal bool
}

// Board owns every item, the spatial index over them, and the layer/rule
// tables queried while routing. Mutation (AddItem/RemoveItem) and read
// queries are safe for concurrent use; a single autoroute session never
// calls them concurrently with itself, but an observer or a DRC pass on a
// different goroutine legitimately might.
type Board struct {
	mu        sync.RWMutex
	items     map[uint32]*Item
	nextID    uint32
	index     *spatialindex.Tree
	layers    []Layer
	clearance *rules.ClearanceMatrix
	nets      map[int]*rules.Net
	classes   map[string]*rules.NetClass
}

// New returns an empty board with the given layer structure and clearance
// matrix.
func New(layers []Layer, clearance *rules.ClearanceMatrix) *Board {
	return &Board{
		items:     make(map[uint32]*Item),
		index:     spatialindex.New(),
		layers:    layers,
		clearance: clearance,
		nets:      make(map[int]*rules.Net),
		classes:   make(map[string]*rules.NetClass),
	}
}

// Layers returns the board's layer structure.
func (b *Board) Layers() []Layer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Layer, len(b.layers))
	copy(out, b.layers)

	return out
}

// ClearanceMatrix returns the board's clearance matrix.
func (b *Board) ClearanceMatrix() *rules.ClearanceMatrix {
	return b.clearance
}

// RegisterNet records net metadata for later lookup by net number.
func (b *Board) RegisterNet(n rules.Net) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nets[n.NetNumber] = &n
}

// Net returns the registered net metadata, if any.
func (b *Board) Net(n int) (*rules.Net, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	net, ok := b.nets[n]

	return net, ok
}

// RegisterNetClass records a net class for later lookup by name.
func (b *Board) RegisterNetClass(nc *rules.NetClass) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.classes[nc.Name] = nc
}

// NetClass returns the registered net class, if any.
func (b *Board) NetClass(name string) (*rules.NetClass, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	nc, ok := b.classes[name]

	return nc, ok
}

// AddItem assigns a fresh id, inserts the item into the spatial index, and
// stores it. The id is never reused within the board's lifetime even after
// the item is later removed.
func (b *Board) AddItem(it *Item) (uint32, error) {
	box := it.BoundingBox()
	if box.IsEmpty() {
		return 0, ErrEmptyBoundingBox
	}
	if err := geom.ValidateBox(box); err != nil {
		return 0, fmt.Errorf("boardmodel: AddItem: %w", err)
	}
	for n := range it.Nets {
		if n < 0 {
			return 0, ErrInvalidNet
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	it.ID = b.nextID
	b.items[it.ID] = it
	b.index.Insert(it.ID, 0, box, spatialindex.LayerSpan{First: it.FirstLayer, Last: it.LastLayer})

	return it.ID, nil
}

// RemoveItem removes id from the spatial index first, then drops its
// catalog entry. A stale id is a no-op returning false.
func (b *Board) RemoveItem(id uint32) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.items[id]; !ok {
		return false
	}
	b.index.Remove(id)
	delete(b.items, id)

	return true
}

// Item returns the item with the given id, if present.
func (b *Board) Item(id uint32) (*Item, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	it, ok := b.items[id]

	return it, ok
}

// Items returns every item currently on the board, in a newly allocated
// slice (no stable order is guaranteed).
func (b *Board) Items() []*Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, it)
	}

	return out
}

// ItemsByNet performs a linear scan for every item carrying net n.
// Correctness only, not performance-critical.
func (b *Board) ItemsByNet(n int) []*Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*Item
	for _, it := range b.items {
		if it.HasNet(n) {
			out = append(out, it)
		}
	}

	return out
}

// ItemsByLayer performs a linear scan for every item whose layer span
// includes layer.
func (b *Board) ItemsByLayer(layer int) []*Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*Item
	for _, it := range b.items {
		if it.LayerOverlaps(layer, layer) {
			out = append(out, it)
		}
	}

	return out
}

// ObstaclesForTrace returns every item in box that shares at least one layer
// in [firstLayer, lastLayer] and is an obstacle to a trace on net (i.e. does
// not share net) - the workhorse query for the maze search.
func (b *Board) ObstaclesForTrace(net int, box geom.Box, firstLayer, lastLayer int) []*Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	refs := b.index.Overlapping(box, -1)
	seen := make(map[uint32]struct{}, len(refs))
	var out []*Item
	for _, ref := range refs {
		if _, dup := seen[ref.ItemID]; dup {
			continue
		}
		seen[ref.ItemID] = struct{}{}

		it, ok := b.items[ref.ItemID]
		if !ok || !it.LayerOverlaps(firstLayer, lastLayer) {
			continue
		}
		if it.HasNet(net) {
			continue
		}
		out = append(out, it)
	}

	return out
}

// NeighborsInBox returns every distinct item overlapping box on layer (or on
// any layer if layer < 0), with no net filtering - the general-purpose
// spatial-index query DRC's clearance and keep-out passes build on, as
// opposed to ObstaclesForTrace's net-aware variant.
func (b *Board) NeighborsInBox(box geom.Box, layer int) []*Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	refs := b.index.Overlapping(box, layer)
	seen := make(map[uint32]struct{}, len(refs))
	var out []*Item
	for _, ref := range refs {
		if _, dup := seen[ref.ItemID]; dup {
			continue
		}
		seen[ref.ItemID] = struct{}{}

		if it, ok := b.items[ref.ItemID]; ok {
			out = append(out, it)
		}
	}

	return out
}

// IsProhibited reports whether point lies inside a keep-out that prohibits
// trace placement for net on layer - the maze search's enforcement hook.
func (b *Board) IsProhibited(point geom.Point, layer int, net int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	box := geom.BoxFromPoint(point)
	refs := b.index.Overlapping(box, layer)
	for _, ref := range refs {
		it, ok := b.items[ref.ItemID]
		if !ok || it.Kind != KindKeepOut || !it.ProhibitsTrace {
			continue
		}
		if it.NetScope != 0 && it.NetScope == net {
			continue
		}
		if it.Shape.Contains(point) {
			return true
		}
	}

	return false
}

// ConnectedComponents partitions the items of net into physically connected
// groups using a union-find over overlapping bounding boxes, grounded on
// github.com/katalvlaran/lvlath's prim_kruskal Kruskal disjoint-set
// (extracted as internal/unionfind.DSU), generalized from "which edges join
// a spanning tree" to "which items touch".
func (b *Board) ConnectedComponents(net int) [][]*Item {
	items := b.ItemsByNet(net)
	dsu := unionfind.New()
	for _, it := range items {
		dsu.Add(it.ID)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, bb := items[i], items[j]
			if !a.LayerOverlaps(bb.FirstLayer, bb.LastLayer) {
				continue
			}
			if a.BoundingBox().Intersects(bb.BoundingBox()) {
				dsu.Union(a.ID, bb.ID)
			}
		}
	}

	byID := make(map[uint32]*Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	groupsByRoot := dsu.Groups()
	components := make([][]*Item, 0, len(groupsByRoot))
	for _, ids := range groupsByRoot {
		group := make([]*Item, 0, len(ids))
		for _, id := range ids {
			group = append(group, byID[id])
		}
		components = append(components, group)
	}

	return components
}
