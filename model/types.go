package model

import "fmt"

// VertexID is an opaque 64-bit vertex identifier, typically the stable hash
// of a human-readable key (see package idhash).
type VertexID uint64

// Label names an edge predicate. The empty label is never valid on a
// StreamingGraphTuple.
type Label string

// StateID indexes a state of a compiled query automaton. State 0 is always
// the start state of a freshly compiled automaton.
type StateID uint8

// StartState is the state every compiled automaton begins in.
const StartState StateID = 0

// VertexStatePair keys a node in a spanning tree: the product-graph vertex
// paired with the automaton state reached along the path that discovered it.
type VertexStatePair struct {
	Vertex VertexID
	State  StateID
}

func (p VertexStatePair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Vertex, p.State)
}

// HalfOpenInterval represents the validity window [Start, End) of a fact.
// End is exclusive: a tuple with End == t has already expired at time t.
type HalfOpenInterval struct {
	Start uint64
	End   uint64
}

// Overlaps reports whether two half-open intervals share at least one
// instant. The three branches mirror the reference definition exactly, and
// the result is symmetric in its two operands: equal starts are always
// considered overlapping regardless of either end.
func (iv HalfOpenInterval) Overlaps(other HalfOpenInterval) bool {
	switch {
	case iv.Start > other.Start:
		return iv.Start < other.End
	case iv.Start < other.Start:
		return iv.End > other.Start
	default:
		return true
	}
}

// Merge returns the convex hull of two overlapping-or-adjacent intervals:
// the min of the starts and the max of the ends. Callers decide whether
// merging non-overlapping intervals is meaningful for their use case.
func (iv HalfOpenInterval) Merge(other HalfOpenInterval) HalfOpenInterval {
	return HalfOpenInterval{
		Start: minU64(iv.Start, other.Start),
		End:   maxU64(iv.End, other.End),
	}
}

// Intersect returns the overlap of two intervals: the max of the starts and
// the min of the ends. The result is only meaningful (non-empty) when
// Overlaps reported true; callers that intersect unconditionally may get
// back an interval with Start >= End.
func (iv HalfOpenInterval) Intersect(other HalfOpenInterval) HalfOpenInterval {
	return HalfOpenInterval{
		Start: maxU64(iv.Start, other.Start),
		End:   minU64(iv.End, other.End),
	}
}

// Empty reports whether the interval contains no instants.
func (iv HalfOpenInterval) Empty() bool {
	return iv.Start >= iv.End
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// StreamingGraphTuple is one timestamped, labeled, directed edge admitted
// into the evaluator: Source --Label--> Target, valid during Interval.
type StreamingGraphTuple struct {
	Source   VertexID
	Target   VertexID
	Label    Label
	Interval HalfOpenInterval
}

func (t StreamingGraphTuple) String() string {
	return fmt.Sprintf("%d --%s[%d,%d)--> %d", t.Source, t.Label, t.Interval.Start, t.Interval.End, t.Target)
}

// ResultTuple is a path match emitted by the driver: a root vertex that
// reached a final automaton state, together with the vertex currently
// occupying that state and the validity interval of the match.
type ResultTuple struct {
	Root     VertexID
	Vertex   VertexID
	State    StateID
	Interval HalfOpenInterval
}

func (r ResultTuple) String() string {
	return fmt.Sprintf("match(root=%d, vertex=%d, state=%d, [%d,%d))", r.Root, r.Vertex, r.State, r.Interval.Start, r.Interval.End)
}
