package delta

import (
	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/productgraph"
)

// freshVisit is the sentinel "old end" passed for a node being expanded
// for the first time, telling TreeExpand to enumerate every outgoing edge
// instead of only those that grew past a previous bound. Real edge
// expiries are always strictly positive (every tuple has Start < End),
// so zero can never collide with a genuine previous bound.
const freshVisit = 0

type workItem struct {
	key    model.VertexStatePair
	oldEnd uint64
}

// Update names one tree node TreeExpand added or strengthened during a
// single call: either a brand-new (vertex, state) pair, or a pair whose
// interval just grew. A node visited but left unimproved produces no
// Update, so the driver can emit results strictly from this list instead
// of re-scanning the whole tree.
type Update struct {
	Pair     model.VertexStatePair
	Interval model.HalfOpenInterval
}

// TreeExpand grows tree from the single node named by start, whose
// validity interval is taken as already up to date in the tree (the driver
// passes the source node of a newly inserted or strengthened edge; if start
// is not in the tree, nothing happens). It is a breadth-first worklist
// over the product graph: for every candidate child the automaton and the
// live edges reach, it either attaches a brand-new tree node, strengthens
// an already-present one, or does nothing if the candidate interval does
// not actually improve on what is already known.
//
// When re-expanding a node whose interval just grew (a work item whose
// oldEnd is not freshVisit),
// only edges that grew past the node's previous expiry are considered
// (productgraph.OutgoingAbove), since every other neighbor was already
// accounted for the last time this node was expanded — this is the
// optimization that keeps repeated strengthening from re-scanning a
// node's entire neighborhood on every improvement.
//
// Deliberately not implemented: the alternative-parent ("negative-tuple")
// rerouting optimization, which would let a child whose interval shrank
// search for a different parent before falling back to full re-expansion.
// It is an optional strengthening of this algorithm, not a required
// behavior, and spec guidance was to decide rather than guess its exact
// shape — see DESIGN.md's Open Question decisions.
func TreeExpand(tree *SpanningTree, delta *DeltaIndex, pg *productgraph.ProductGraph, start model.VertexStatePair) []Update {
	queue := []workItem{{key: start, oldEnd: freshVisit}}
	var updates []Update

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		curNode, ok := tree.GetVertex(item.key)
		if !ok {
			continue
		}
		curInterval := curNode.Interval()

		var neighbors []productgraph.Neighbor
		if item.oldEnd == freshVisit {
			neighbors = pg.Outgoing(item.key.Vertex, item.key.State)
		} else {
			neighbors = pg.OutgoingAbove(item.key.Vertex, item.key.State, item.oldEnd)
		}

		for _, nb := range neighbors {
			childKey := model.VertexStatePair{Vertex: nb.Vertex, State: nb.NextState}
			candidate := curInterval.Intersect(nb.Interval)
			if candidate.Empty() {
				continue
			}

			existing, present := tree.GetVertex(childKey)
			switch {
			case !present:
				newNode := tree.AddVertex(childKey.Vertex, childKey.State, nb.Interval, item.key, nb.Interval.End)
				delta.InsertIntoNodeIndex(childKey.Vertex, childKey.State, tree.Root())
				queue = append(queue, workItem{key: childKey, oldEnd: freshVisit})
				updates = append(updates, Update{Pair: childKey, Interval: newNode.Interval()})
			case candidate.End > existing.Interval().End:
				oldEnd := existing.Interval().End
				tree.UpdateParent(childKey, item.key, candidate, nb.Interval.End)
				queue = append(queue, workItem{key: childKey, oldEnd: oldEnd})
				updates = append(updates, Update{Pair: childKey, Interval: candidate})
			default:
				// Not an improvement: this edge was already accounted for
				// (or is weaker than the existing path), nothing to do.
			}
		}
	}

	return updates
}
