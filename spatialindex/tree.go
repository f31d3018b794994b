package spatialindex

import (
	"sync"

	"github.com/tracequest/tracequest/geom"
)

// node is one binary-tree node. Leaves carry ref/span/box and nil children;
// internal nodes carry box = left.box ∪ right.box and non-nil children.
type node struct {
	box            geom.Box
	parent         *node
	left, right    *node
	isLeaf         bool
	ref            ItemRef
	span           LayerSpan
}

// Tree is a bounding-box tree over board items, guarded by an RWMutex so a
// read-only observer or a concurrent session routing a different net class
// may query while another session mutates a different region - in practice
// a single autoroute session never calls Insert/Remove and
// Overlapping concurrently on the same Tree, but the lock costs nothing on
// the uncontended path and keeps the type safe to share.
type Tree struct {
	mu      sync.RWMutex
	root    *node
	byItem  map[uint32][]*node
	leafCnt int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{byItem: make(map[uint32][]*node)}
}

// Insert adds one leaf for (itemID, subShape) with the given bounding box
// and layer span. A leaf with an empty box is silently ignored.
func (t *Tree) Insert(itemID uint32, subShape int, box geom.Box, span LayerSpan) {
	if box.IsEmpty() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	leaf := &node{box: box, isLeaf: true, ref: ItemRef{ItemID: itemID, SubShape: subShape}, span: span}
	t.insertLeaf(leaf)
	t.byItem[itemID] = append(t.byItem[itemID], leaf)
	t.leafCnt++
}

// insertLeaf performs the minimum-area-increase descent and splices the new
// leaf in beside whichever existing leaf it reaches.
func (t *Tree) insertLeaf(newLeaf *node) {
	if t.root == nil {
		t.root = newLeaf

		return
	}

	cur := t.root
	for !cur.isLeaf {
		leftInc := cur.left.box.AreaIncrease(newLeaf.box)
		rightInc := cur.right.box.AreaIncrease(newLeaf.box)
		if leftInc <= rightInc {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	internal := &node{
		box:    cur.box.Union(newLeaf.box),
		parent: cur.parent,
		left:   cur,
		right:  newLeaf,
	}
	cur.parent = internal
	newLeaf.parent = internal

	if internal.parent == nil {
		t.root = internal
	} else {
		if internal.parent.left == cur {
			internal.parent.left = internal
		} else {
			internal.parent.right = internal
		}
	}

	t.propagateBoxUpdate(internal.parent)
}

func (t *Tree) propagateBoxUpdate(n *node) {
	for n != nil {
		n.box = n.left.box.Union(n.right.box)
		n = n.parent
	}
}

// Remove deletes every leaf registered for itemID. Returns the number of
// leaves removed (0 if the item had none, a no-op consistent with
// boardmodel's "mutation with stale ids is a no-op" contract).
func (t *Tree) Remove(itemID uint32) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaves := t.byItem[itemID]
	for _, leaf := range leaves {
		t.removeLeaf(leaf)
	}
	delete(t.byItem, itemID)

	return len(leaves)
}

func (t *Tree) removeLeaf(leaf *node) {
	t.leafCnt--
	parent := leaf.parent
	if parent == nil {
		// leaf was the sole root.
		t.root = nil

		return
	}

	sibling := parent.left
	if sibling == leaf {
		sibling = parent.right
	}
	grand := parent.parent
	sibling.parent = grand
	if grand == nil {
		t.root = sibling
	} else {
		if grand.left == parent {
			grand.left = sibling
		} else {
			grand.right = sibling
		}
	}
	t.propagateBoxUpdate(grand)
}

// Len returns the number of leaves currently stored (for diagnostics/tests).
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.leafCnt
}

// Overlapping returns every (itemID, subShape) whose bounding box intersects
// box and, when layer >= 0, whose layer span contains layer. Results may
// contain more than one entry per item id (one per registered sub-shape);
// the caller deduplicates if it only cares about distinct items.
func (t *Tree) Overlapping(box geom.Box, layer int) []ItemRef {
	if box.IsEmpty() {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []ItemRef
	t.queryRec(t.root, box, layer, &out)

	return out
}

func (t *Tree) queryRec(n *node, box geom.Box, layer int, out *[]ItemRef) {
	if n == nil || !n.box.Intersects(box) {
		return
	}
	if n.isLeaf {
		if layer < 0 || n.span.Contains(layer) {
			*out = append(*out, n.ref)
		}

		return
	}
	t.queryRec(n.left, box, layer, out)
	t.queryRec(n.right, box, layer, out)
}
