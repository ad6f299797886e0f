package delta

import (
	"math"

	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/pqindex"
)

// rootInterval is the sentinel "always valid" interval assigned to every
// tree's root node. Intersecting any real interval with rootInterval is
// the identity operation, so the root needs no special case anywhere else
// in this package: it behaves exactly like a node whose own path-to-root
// validity is unconstrained.
var rootInterval = model.HalfOpenInterval{Start: 0, End: math.MaxUint64}

// SpanningTree tracks, for one candidate start vertex, every (vertex,
// state) pair reachable along a path the query automaton accepts so far,
// keyed by model.VertexStatePair inside a priority queue ordered by
// expiry, so the soonest-expiring node is always known in O(1).
type SpanningTree struct {
	root      model.VertexID
	rootNode  *TreeNode
	nodeQueue *pqindex.MinPQIndex[model.VertexStatePair, *TreeNode]
}

// NewSpanningTree creates a tree rooted at root, with the root itself
// occupying (root, model.StartState).
func NewSpanningTree(root model.VertexID) *SpanningTree {
	rootNode := newTreeNode(root, model.StartState, rootInterval, 0, nil)
	st := &SpanningTree{
		root:      root,
		rootNode:  rootNode,
		nodeQueue: pqindex.New[model.VertexStatePair, *TreeNode](),
	}
	st.nodeQueue.Push(rootNode.Key(), rootNode, math.MaxUint64)
	return st
}

// Root returns the vertex this tree is rooted at.
func (t *SpanningTree) Root() model.VertexID { return t.root }

// RootNode returns the tree's root TreeNode.
func (t *SpanningTree) RootNode() *TreeNode { return t.rootNode }

// GetVertex looks up the node for key.
func (t *SpanningTree) GetVertex(key model.VertexStatePair) (*TreeNode, bool) {
	node, _, ok := t.nodeQueue.Get(key)
	return node, ok
}

// Contains reports whether key is currently part of the tree.
func (t *SpanningTree) Contains(key model.VertexStatePair) bool {
	_, ok := t.GetVertex(key)
	return ok
}

// IsEmpty reports whether the tree holds nothing but its own root, i.e. it
// has not matched any path yet (or has lost every match to expiry).
func (t *SpanningTree) IsEmpty() bool {
	return t.nodeQueue.Len() <= 1
}

// AllNodes calls fn once for every node currently in the tree, including
// the root, in unspecified order.
func (t *SpanningTree) AllNodes(fn func(node *TreeNode)) {
	t.nodeQueue.All(func(_ model.VertexStatePair, node *TreeNode, _ uint64) {
		fn(node)
	})
}

// MinTimestamp returns the minimum expiry timestamp across every node in
// the tree (including the root, whose sentinel expiry is math.MaxUint64),
// used as this tree's priority in the delta index's tree queue.
func (t *SpanningTree) MinTimestamp() uint64 {
	_, _, priority, ok := t.nodeQueue.PeekMin()
	if !ok {
		return math.MaxUint64
	}
	return priority
}

// AddVertex attaches a brand-new child to parent: its validity is the
// intersection of parent's own interval with edgeInterval, the interval
// of the single product-graph edge that connects them. incomingEdgeEnd is
// recorded separately from the (possibly tighter) intersected interval and
// is exposed through TreeNode.IncomingEdgeEnd.
func (t *SpanningTree) AddVertex(vertex model.VertexID, state model.StateID, edgeInterval model.HalfOpenInterval, parent model.VertexStatePair, incomingEdgeEnd uint64) *TreeNode {
	parentNode, ok := t.GetVertex(parent)
	if !ok {
		panic("delta: AddVertex with unknown parent")
	}
	nodeInterval := edgeInterval.Intersect(parentNode.Interval())
	key := model.VertexStatePair{Vertex: vertex, State: state}
	node := newTreeNode(vertex, state, nodeInterval, incomingEdgeEnd, &parent)
	t.nodeQueue.Push(key, node, nodeInterval.End)
	parentNode.addChild(key)
	return node
}

// UpdateParent rewires an already-present child onto a (possibly new)
// parent with a stronger validity interval, detaching it from its
// previous parent's child set first.
func (t *SpanningTree) UpdateParent(child model.VertexStatePair, newParent model.VertexStatePair, newInterval model.HalfOpenInterval, incomingEdgeEnd uint64) {
	childNode, ok := t.GetVertex(child)
	if !ok {
		panic("delta: UpdateParent of unknown child")
	}
	if oldParent := childNode.Parent(); oldParent != nil {
		if oldParentNode, ok := t.GetVertex(*oldParent); ok {
			oldParentNode.removeChild(child)
		}
	}
	newParentNode, ok := t.GetVertex(newParent)
	if !ok {
		panic("delta: UpdateParent with unknown new parent")
	}
	childNode.setParent(&newParent, incomingEdgeEnd)
	childNode.setInterval(newInterval)
	newParentNode.addChild(child)
	t.nodeQueue.ChangePriority(child, newInterval.End)
}

// removeSubtree deletes key and every one of its descendants from the
// tree, returning every key removed. It does not touch key's parent's
// child set; callers that are not themselves already detaching key from
// its parent must do so separately.
func (t *SpanningTree) removeSubtree(key model.VertexStatePair) []model.VertexStatePair {
	node, ok := t.GetVertex(key)
	if !ok {
		return nil
	}
	t.nodeQueue.Remove(key)
	removed := []model.VertexStatePair{key}
	for _, child := range node.Children() {
		removed = append(removed, t.removeSubtree(child)...)
	}
	return removed
}

// Expire removes every node whose validity has ended at or before
// lowWatermark, along with every descendant of such a node — once a node's
// interval expires, every path through it is broken regardless of whether
// a descendant's own (tighter) interval has technically expired yet. The
// root is never expired: its sentinel interval never ends. It returns the
// keys of every node removed.
func (t *SpanningTree) Expire(lowWatermark uint64) []model.VertexStatePair {
	rootKey := t.rootNode.Key()
	var removed []model.VertexStatePair
	for {
		key, node, priority, ok := t.nodeQueue.PeekMin()
		if !ok || priority > lowWatermark || key == rootKey {
			return removed
		}
		t.nodeQueue.Remove(key)
		removed = append(removed, key)
		if parent := node.Parent(); parent != nil {
			if parentNode, ok := t.GetVertex(*parent); ok {
				parentNode.removeChild(key)
			}
		}
		for _, child := range node.Children() {
			removed = append(removed, t.removeSubtree(child)...)
		}
	}
}
