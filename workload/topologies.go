package workload

import (
	"fmt"

	"github.com/katalvlaran/windowrpq/idhash"
	"github.com/katalvlaran/windowrpq/model"
)

func vertexID(prefix string, i int) model.VertexID {
	return idhash.HashString(fmt.Sprintf("%s%d", prefix, i))
}

func (c config) emit(ts uint64, source, target model.VertexID) model.StreamingGraphTuple {
	return model.StreamingGraphTuple{
		Source: source,
		Target: target,
		Label:  c.label(),
		Interval: model.HalfOpenInterval{
			Start: ts,
			End:   ts + c.defaultEnd,
		},
	}
}

// Path emits a simple directed path v0 -> v1 -> ... -> v(n-1), with
// successive edges' admission timestamps spaced by the configured step.
// n must be at least 2.
func Path(n int, opts ...Option) ([]model.StreamingGraphTuple, error) {
	if n < 2 {
		return nil, fmt.Errorf("workload: Path(n=%d): %w", n, ErrTooFewVertices)
	}
	c := newConfig(opts...)
	tuples := make([]model.StreamingGraphTuple, 0, n-1)
	var ts uint64
	for i := 1; i < n; i++ {
		tuples = append(tuples, c.emit(ts, vertexID(c.idPrefix, i-1), vertexID(c.idPrefix, i)))
		ts += c.timestampStep
	}
	return tuples, nil
}

// Cycle emits a directed cycle v0 -> v1 -> ... -> v(n-1) -> v0. n must be
// at least 3.
func Cycle(n int, opts ...Option) ([]model.StreamingGraphTuple, error) {
	if n < 3 {
		return nil, fmt.Errorf("workload: Cycle(n=%d): %w", n, ErrTooFewVertices)
	}
	c := newConfig(opts...)
	tuples := make([]model.StreamingGraphTuple, 0, n)
	var ts uint64
	for i := 0; i < n; i++ {
		tuples = append(tuples, c.emit(ts, vertexID(c.idPrefix, i), vertexID(c.idPrefix, (i+1)%n)))
		ts += c.timestampStep
	}
	return tuples, nil
}

// Star emits n-1 edges from a single hub vertex v0 out to v1..v(n-1). n
// must be at least 2.
func Star(n int, opts ...Option) ([]model.StreamingGraphTuple, error) {
	if n < 2 {
		return nil, fmt.Errorf("workload: Star(n=%d): %w", n, ErrTooFewVertices)
	}
	c := newConfig(opts...)
	hub := vertexID(c.idPrefix, 0)
	tuples := make([]model.StreamingGraphTuple, 0, n-1)
	var ts uint64
	for i := 1; i < n; i++ {
		tuples = append(tuples, c.emit(ts, hub, vertexID(c.idPrefix, i)))
		ts += c.timestampStep
	}
	return tuples, nil
}

// Complete emits every directed edge vi -> vj, i != j, in a graph of n
// vertices. n must be at least 2.
func Complete(n int, opts ...Option) ([]model.StreamingGraphTuple, error) {
	if n < 2 {
		return nil, fmt.Errorf("workload: Complete(n=%d): %w", n, ErrTooFewVertices)
	}
	c := newConfig(opts...)
	tuples := make([]model.StreamingGraphTuple, 0, n*(n-1))
	var ts uint64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			tuples = append(tuples, c.emit(ts, vertexID(c.idPrefix, i), vertexID(c.idPrefix, j)))
			ts += c.timestampStep
		}
	}
	return tuples, nil
}

// Bipartite emits every directed edge from each of the left vertices to
// each of the right vertices. left and right must each be at least 1.
func Bipartite(left, right int, opts ...Option) ([]model.StreamingGraphTuple, error) {
	if left < 1 || right < 1 {
		return nil, fmt.Errorf("workload: Bipartite(left=%d,right=%d): %w", left, right, ErrTooFewVertices)
	}
	c := newConfig(opts...)
	tuples := make([]model.StreamingGraphTuple, 0, left*right)
	var ts uint64
	for i := 0; i < left; i++ {
		leftID := vertexID(c.idPrefix+"L", i)
		for j := 0; j < right; j++ {
			rightID := vertexID(c.idPrefix+"R", j)
			tuples = append(tuples, c.emit(ts, leftID, rightID))
			ts += c.timestampStep
		}
	}
	return tuples, nil
}
