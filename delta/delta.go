package delta

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/pqindex"
)

// ErrNonEmptyTree is the InternalInvariant fault raised when the driver
// attempts to remove a spanning tree that still contains matched nodes
// beyond its own root. A correctly operating driver only ever removes a
// tree after Expire has drained it empty; reaching this path means a
// caller broke that contract, so it is never recovered.
var ErrNonEmptyTree = errors.New("delta: cannot remove non-empty spanning tree")

// DeltaIndex owns the full family of per-root spanning trees plus the
// inverted index from (vertex, state) back to every root whose tree
// currently contains it, and the priority queue of trees ordered by their
// soonest-expiring node.
type DeltaIndex struct {
	trees     map[model.VertexID]*SpanningTree
	treeQueue *pqindex.MinPQIndex[model.VertexID, *SpanningTree]
	nodeIndex map[model.VertexStatePair]map[model.VertexID]struct{}
}

// NewDeltaIndex constructs an empty DeltaIndex.
func NewDeltaIndex() *DeltaIndex {
	return &DeltaIndex{
		trees:     make(map[model.VertexID]*SpanningTree),
		treeQueue: pqindex.New[model.VertexID, *SpanningTree](),
		nodeIndex: make(map[model.VertexStatePair]map[model.VertexID]struct{}),
	}
}

// HasTree reports whether root already has a spanning tree.
func (d *DeltaIndex) HasTree(root model.VertexID) bool {
	_, ok := d.trees[root]
	return ok
}

// GetTree returns root's spanning tree, if any.
func (d *DeltaIndex) GetTree(root model.VertexID) (*SpanningTree, bool) {
	t, ok := d.trees[root]
	return t, ok
}

// AddTree creates and registers a new spanning tree rooted at root,
// including an entry in the inverted index for the root's own
// (root, model.StartState) node.
func (d *DeltaIndex) AddTree(root model.VertexID) *SpanningTree {
	tree := NewSpanningTree(root)
	d.trees[root] = tree
	d.treeQueue.Push(root, tree, math.MaxUint64)
	d.InsertIntoNodeIndex(root, model.StartState, root)
	return tree
}

// RemoveTree deletes root's spanning tree. It panics with ErrNonEmptyTree
// if the tree still holds any node beyond its own root — removing a tree
// that still anchors live matches would silently drop results, which is
// exactly the kind of invariant violation this fault exists to surface
// loudly instead of masking.
func (d *DeltaIndex) RemoveTree(root model.VertexID) {
	tree, ok := d.trees[root]
	if !ok {
		return
	}
	if !tree.IsEmpty() {
		panic(ErrNonEmptyTree)
	}
	d.RemoveFromNodeIndex(root, model.StartState, root)
	d.treeQueue.Remove(root)
	delete(d.trees, root)
}

// Requeue re-inserts tree into the tree queue at its current minimum
// timestamp. Callers use this after directly mutating a tree (via
// TreeExpand or SpanningTree.Expire) to keep the queue's priority in sync.
func (d *DeltaIndex) Requeue(tree *SpanningTree) {
	d.treeQueue.Push(tree.Root(), tree, tree.MinTimestamp())
}

// ExpiredTrees pops and returns every tree whose minimum timestamp has
// fallen to or below lowWatermark. Popped trees are no longer present in
// the tree queue until the caller calls Requeue on them; between those two
// calls GetTree still finds them (they remain registered in d.trees), but
// they will not reappear in a second ExpiredTrees call at the same
// watermark.
func (d *DeltaIndex) ExpiredTrees(lowWatermark uint64) []*SpanningTree {
	var trees []*SpanningTree
	for {
		_, tree, priority, ok := d.treeQueue.PeekMin()
		if !ok || priority > lowWatermark {
			break
		}
		d.treeQueue.PopMin()
		trees = append(trees, tree)
	}
	return trees
}

// ContainingTrees returns the roots of every spanning tree that currently
// contains key, sorted for deterministic iteration.
func (d *DeltaIndex) ContainingTrees(key model.VertexStatePair) []model.VertexID {
	roots, ok := d.nodeIndex[key]
	if !ok {
		return nil
	}
	out := make([]model.VertexID, 0, len(roots))
	for r := range roots {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InsertIntoNodeIndex records that root's tree now contains key.
func (d *DeltaIndex) InsertIntoNodeIndex(vertex model.VertexID, state model.StateID, root model.VertexID) {
	key := model.VertexStatePair{Vertex: vertex, State: state}
	roots, ok := d.nodeIndex[key]
	if !ok {
		roots = make(map[model.VertexID]struct{})
		d.nodeIndex[key] = roots
	}
	roots[root] = struct{}{}
}

// RemoveFromNodeIndex records that root's tree no longer contains key,
// dropping the index entry entirely once no tree contains it.
func (d *DeltaIndex) RemoveFromNodeIndex(vertex model.VertexID, state model.StateID, root model.VertexID) {
	key := model.VertexStatePair{Vertex: vertex, State: state}
	roots, ok := d.nodeIndex[key]
	if !ok {
		return
	}
	delete(roots, root)
	if len(roots) == 0 {
		delete(d.nodeIndex, key)
	}
}
