package productgraph

import (
	"math"

	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/pqindex"
)

// graphNode holds one vertex's forward and backward adjacency, each bucketed
// by label and prioritized by edge expiry (interval.End), so the soonest
// expiring neighbor under any label is always a O(log n) pop away.
type graphNode struct {
	vertex   model.VertexID
	outgoing map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval]
	incoming map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval]
}

func newGraphNode(v model.VertexID) *graphNode {
	return &graphNode{
		vertex:   v,
		outgoing: make(map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval]),
		incoming: make(map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval]),
	}
}

// upsert inserts or strengthens one neighbor bucket, returning true iff the
// neighbor's validity was actually extended (a brand-new neighbor, or an
// existing one whose interval.End grew). A weaker or equal observation is a
// no-op, mirroring the "only replace on strictly larger expiry" rule that
// keeps the per-label index consistent with the node-level minimum.
func upsert(buckets map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval], label model.Label, neighbor model.VertexID, interval model.HalfOpenInterval) bool {
	idx, ok := buckets[label]
	if !ok {
		idx = pqindex.New[model.VertexID, model.HalfOpenInterval]()
		buckets[label] = idx
	}
	if existing, _, ok := idx.Get(neighbor); ok && existing.End >= interval.End {
		return false
	}
	idx.Push(neighbor, interval, interval.End)
	return true
}

func (n *graphNode) addOutgoing(label model.Label, target model.VertexID, interval model.HalfOpenInterval) bool {
	return upsert(n.outgoing, label, target, interval)
}

func (n *graphNode) addIncoming(label model.Label, source model.VertexID, interval model.HalfOpenInterval) bool {
	return upsert(n.incoming, label, source, interval)
}

// removeExpired pops every neighbor whose interval has expired as of
// lowWatermark (End <= lowWatermark) from every label bucket in buckets,
// dropping buckets left empty, and returns the minimum remaining expiry
// across all of them (math.MaxUint64 if none remain).
func removeExpired(buckets map[model.Label]*pqindex.MinPQIndex[model.VertexID, model.HalfOpenInterval], lowWatermark uint64) uint64 {
	minRemaining := uint64(math.MaxUint64)
	for label, idx := range buckets {
		for {
			_, _, priority, ok := idx.PeekMin()
			if !ok || priority > lowWatermark {
				break
			}
			idx.PopMin()
		}
		if idx.Len() == 0 {
			delete(buckets, label)
			continue
		}
		_, _, priority, _ := idx.PeekMin()
		if priority < minRemaining {
			minRemaining = priority
		}
	}
	return minRemaining
}

func (n *graphNode) removeExpiredOutgoing(lowWatermark uint64) uint64 {
	return removeExpired(n.outgoing, lowWatermark)
}

func (n *graphNode) removeExpiredIncoming(lowWatermark uint64) uint64 {
	return removeExpired(n.incoming, lowWatermark)
}

func (n *graphNode) isIsolated() bool {
	return len(n.outgoing) == 0 && len(n.incoming) == 0
}
