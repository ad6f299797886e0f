package productgraph

import (
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/windowrpq/automaton"
	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/pqindex"
)

// Neighbor is one edge exposed by Outgoing/OutgoingAbove/Incoming: the
// other endpoint, the edge's validity interval, and the automaton state
// reached (or departed from) by crossing that edge.
type Neighbor struct {
	Vertex    model.VertexID
	Interval  model.HalfOpenInterval
	NextState model.StateID
}

// ProductGraph is the windowed edge set the driver evaluates query
// automaton transitions against. It owns no automaton state of its own
// beyond a reference to the compiled DFA, used only to know which labels
// matter from which state when enumerating neighbors.
//
// A single mutex guards the whole structure. Within one partition no
// concurrent access ever happens (see package driver), but tests and
// diagnostic tooling may inspect a live ProductGraph from another
// goroutine, so the lock is cheap insurance rather than a correctness
// requirement of the core algorithm.
type ProductGraph struct {
	mu        sync.Mutex
	nodeIndex *pqindex.MinPQIndex[model.VertexID, *graphNode]
	dfa       *automaton.DFA
}

// New constructs an empty ProductGraph driven by dfa's transition
// structure.
func New(dfa *automaton.DFA) *ProductGraph {
	return &ProductGraph{
		nodeIndex: pqindex.New[model.VertexID, *graphNode](),
		dfa:       dfa,
	}
}

func (g *ProductGraph) getOrCreateNode(v model.VertexID) *graphNode {
	if ptr, ok := g.nodeIndex.GetMut(v); ok {
		return *ptr
	}
	node := newGraphNode(v)
	g.nodeIndex.Push(v, node, math.MaxUint64)
	return node
}

// Insert admits one streaming tuple into both the source's outgoing table
// and the target's incoming table, reporting for each endpoint whether the
// edge strictly extended that endpoint's known validity (srcGrew, dstGrew).
// The node-level eviction priority for both endpoints is lowered if the
// new edge expires sooner than anything currently tracked for that vertex.
func (g *ProductGraph) Insert(t model.StreamingGraphTuple) (srcGrew, dstGrew bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.getOrCreateNode(t.Source)
	dst := g.getOrCreateNode(t.Target)

	srcGrew = src.addOutgoing(t.Label, t.Target, t.Interval)
	dstGrew = dst.addIncoming(t.Label, t.Source, t.Interval)

	g.nodeIndex.TryDecreasePriority(t.Source, t.Interval.End)
	g.nodeIndex.TryDecreasePriority(t.Target, t.Interval.End)
	return srcGrew, dstGrew
}

// Outgoing returns every neighbor reachable from vertex by one edge whose
// label the DFA accepts from state, paired with the state each transition
// advances to.
func (g *ProductGraph) Outgoing(vertex model.VertexID, state model.StateID) []Neighbor {
	return g.outgoingFiltered(vertex, state, 0)
}

// OutgoingAbove is the same traversal as Outgoing, restricted to edges
// whose validity extends strictly past minEnd. TreeExpand uses this to
// re-scan only the neighbors that could not have been considered the last
// time a (vertex, state) tree node was visited, instead of re-enumerating
// everything.
func (g *ProductGraph) OutgoingAbove(vertex model.VertexID, state model.StateID, minEnd uint64) []Neighbor {
	return g.outgoingFiltered(vertex, state, minEnd)
}

func (g *ProductGraph) outgoingFiltered(vertex model.VertexID, state model.StateID, minEnd uint64) []Neighbor {
	g.mu.Lock()
	defer g.mu.Unlock()

	node, _, ok := g.nodeIndex.Get(vertex)
	if !ok {
		return nil
	}
	var out []Neighbor
	for _, tr := range g.dfa.Outgoing(state) {
		idx, ok := node.outgoing[tr.Label]
		if !ok {
			continue
		}
		idx.All(func(neighbor model.VertexID, interval model.HalfOpenInterval, priority uint64) {
			if priority <= minEnd {
				return
			}
			out = append(out, Neighbor{Vertex: neighbor, Interval: interval, NextState: tr.State})
		})
	}
	sortNeighbors(out)
	return out
}

// Incoming returns every neighbor with an edge landing on vertex whose
// label the DFA accepts arriving at state, paired with the state each
// transition departs from.
func (g *ProductGraph) Incoming(vertex model.VertexID, state model.StateID) []Neighbor {
	g.mu.Lock()
	defer g.mu.Unlock()

	node, _, ok := g.nodeIndex.Get(vertex)
	if !ok {
		return nil
	}
	var out []Neighbor
	for _, tr := range g.dfa.Incoming(state) {
		idx, ok := node.incoming[tr.Label]
		if !ok {
			continue
		}
		idx.All(func(neighbor model.VertexID, interval model.HalfOpenInterval, priority uint64) {
			out = append(out, Neighbor{Vertex: neighbor, Interval: interval, NextState: tr.State})
		})
	}
	sortNeighbors(out)
	return out
}

// Evict drops every edge that expired at or before lowWatermark, across
// every vertex whose node-level minimum expiry has fallen that far, and
// removes any vertex left with no edges at all. It must run before new
// inserts are applied for the same logical time, per the driver's
// eviction-before-insert ordering (see package driver).
func (g *ProductGraph) Evict(lowWatermark uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		_, node, priority, ok := g.nodeIndex.PeekMin()
		if !ok || priority > lowWatermark {
			return
		}
		g.nodeIndex.PopMin()

		minOut := node.removeExpiredOutgoing(lowWatermark)
		minIn := node.removeExpiredIncoming(lowWatermark)
		if node.isIsolated() {
			continue
		}
		remaining := minOut
		if minIn < remaining {
			remaining = minIn
		}
		g.nodeIndex.Push(node.vertex, node, remaining)
	}
}

// HasVertex reports whether vertex currently has at least one live edge.
func (g *ProductGraph) HasVertex(vertex model.VertexID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, _, ok := g.nodeIndex.Get(vertex)
	return ok
}

// Len returns the number of vertices currently tracked.
func (g *ProductGraph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodeIndex.Len()
}

func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Vertex != ns[j].Vertex {
			return ns[i].Vertex < ns[j].Vertex
		}
		return ns[i].NextState < ns[j].NextState
	})
}
