package delta

import "github.com/katalvlaran/windowrpq/model"

// TreeNode is one (vertex, state) pair inside a SpanningTree: its validity
// interval (the intersection of every edge interval along the path from
// the tree's root), the edge that most recently attached it to its parent,
// and the set of its own children. Nodes are addressed by key
// (model.VertexStatePair), never by pointer, so a tree is an arena rather
// than a pointer graph — removing a subtree is a matter of deleting keys,
// with no risk of leaving a dangling reference.
type TreeNode struct {
	vertex          model.VertexID
	state           model.StateID
	interval        model.HalfOpenInterval
	incomingEdgeEnd uint64
	parent          *model.VertexStatePair
	children        map[model.VertexStatePair]struct{}
}

func newTreeNode(vertex model.VertexID, state model.StateID, interval model.HalfOpenInterval, incomingEdgeEnd uint64, parent *model.VertexStatePair) *TreeNode {
	return &TreeNode{
		vertex:          vertex,
		state:           state,
		interval:        interval,
		incomingEdgeEnd: incomingEdgeEnd,
		parent:          parent,
		children:        make(map[model.VertexStatePair]struct{}),
	}
}

// Vertex returns the product-graph vertex this node occupies.
func (n *TreeNode) Vertex() model.VertexID { return n.vertex }

// State returns the automaton state reached at this node.
func (n *TreeNode) State() model.StateID { return n.state }

// Key returns the (vertex, state) pair identifying this node.
func (n *TreeNode) Key() model.VertexStatePair {
	return model.VertexStatePair{Vertex: n.vertex, State: n.state}
}

// Interval returns this node's validity window: the intersection of every
// edge interval along the path from the tree's root to this node.
func (n *TreeNode) Interval() model.HalfOpenInterval { return n.interval }

func (n *TreeNode) setInterval(iv model.HalfOpenInterval) { n.interval = iv }

// ExpiryTimestamp returns the instant at which this node's validity ends.
func (n *TreeNode) ExpiryTimestamp() uint64 { return n.interval.End }

// IncomingEdgeEnd returns the expiry of the single product-graph edge that
// attaches this node to its current parent, independent of the node's own
// (possibly tighter) intersected validity. TreeExpand does not consult it:
// its "old end" bound for OutgoingAbove is the node's own Interval().End.
func (n *TreeNode) IncomingEdgeEnd() uint64 { return n.incomingEdgeEnd }

// Parent returns the key of this node's parent, or nil for a tree root.
func (n *TreeNode) Parent() *model.VertexStatePair { return n.parent }

func (n *TreeNode) setParent(parent *model.VertexStatePair, incomingEdgeEnd uint64) {
	n.parent = parent
	n.incomingEdgeEnd = incomingEdgeEnd
}

// Children returns the keys of this node's direct children, in unspecified
// order.
func (n *TreeNode) Children() []model.VertexStatePair {
	out := make([]model.VertexStatePair, 0, len(n.children))
	for k := range n.children {
		out = append(out, k)
	}
	return out
}

func (n *TreeNode) addChild(key model.VertexStatePair) { n.children[key] = struct{}{} }

func (n *TreeNode) removeChild(key model.VertexStatePair) { delete(n.children, key) }
