package driver

import (
	"sort"

	"github.com/katalvlaran/windowrpq/automaton"
	"github.com/katalvlaran/windowrpq/delta"
	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/productgraph"
	"github.com/katalvlaran/windowrpq/rpqlog"
)

type tupleKey struct {
	source model.VertexID
	target model.VertexID
	label  model.Label
}

// Driver is the single-partition incremental evaluator for one compiled
// query against one sliding window. It owns a ProductGraph and a
// DeltaIndex and has no suspension points: Admit and Close both run to
// completion synchronously, so a Driver is safe to drive from a single
// goroutine without any locking of its own (see package productgraph for
// why ProductGraph itself still carries a mutex).
type Driver struct {
	dfa    *automaton.DFA
	cfg    WindowConfig
	pg     *productgraph.ProductGraph
	delta  *delta.DeltaIndex
	stash  map[tupleKey]model.StreamingGraphTuple
	logger *rpqlog.Logger
	filter func(model.Label) bool
}

// NewDriver constructs a Driver evaluating dfa over a window described by
// cfg.
func NewDriver(dfa *automaton.DFA, cfg WindowConfig, opts ...Option) *Driver {
	dc := newDriverConfig(opts...)
	return &Driver{
		dfa:    dfa,
		cfg:    cfg,
		pg:     productgraph.New(dfa),
		delta:  delta.NewDeltaIndex(),
		stash:  make(map[tupleKey]model.StreamingGraphTuple),
		logger: dc.logger,
		filter: dc.labelFilter,
	}
}

// Admit stashes t for the next Close call. If another tuple with the same
// (source, target, label) key is already stashed, the one with the larger
// interval end wins — Admit never shrinks a pending observation.
func (d *Driver) Admit(t model.StreamingGraphTuple) {
	if d.filter != nil && !d.filter(t.Label) {
		return
	}
	key := tupleKey{source: t.Source, target: t.Target, label: t.Label}
	if existing, ok := d.stash[key]; ok {
		if t.Interval.End <= existing.Interval.End {
			return
		}
	}
	d.stash[key] = t
}

// Close advances the driver to logical time t: expired edges and tree
// nodes are evicted first, then every tuple stashed since the last Close
// is applied and used to expand affected spanning trees. The ResultTuples
// returned are exactly the tree-node updates this step actually produced
// that land on a final state — not a re-scan of every match still live —
// so a tuple that does not improve on what is already known never causes
// a previously emitted match to be emitted again.
func (d *Driver) Close(t uint64) []model.ResultTuple {
	d.pg.Evict(t)
	d.expireTrees(t)

	stashed := d.stash
	d.stash = make(map[tupleKey]model.StreamingGraphTuple)

	var results []model.ResultTuple
	for _, tup := range stashed {
		results = append(results, d.applyInsert(tup)...)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Root != results[j].Root {
			return results[i].Root < results[j].Root
		}
		return results[i].Vertex < results[j].Vertex
	})
	return results
}

func (d *Driver) expireTrees(t uint64) {
	for _, tree := range d.delta.ExpiredTrees(t) {
		removed := tree.Expire(t)
		for _, key := range removed {
			d.delta.RemoveFromNodeIndex(key.Vertex, key.State, tree.Root())
		}
		if tree.IsEmpty() {
			d.delta.RemoveTree(tree.Root())
		} else {
			d.delta.Requeue(tree)
		}
		if len(removed) > 0 {
			d.logger.Debugf("driver: tree root=%d expired %d node(s) at t=%d", tree.Root(), len(removed), t)
		}
	}
}

// applyInsert admits tup into the product graph and, only if that actually
// extended the validity known for either endpoint, re-expands every
// spanning tree with an active (source, from-state) node for one of tup's
// label transitions — creating a fresh tree rooted at the source first if
// the transition departs state 0 and the source has no tree. The
// result tuples returned are exactly the nodes TreeExpand added or
// strengthened this call that land on a final state; an edge re-admitted
// with no improvement (grew_expiry false on both ends) yields nothing,
// since nothing downstream could have changed.
func (d *Driver) applyInsert(tup model.StreamingGraphTuple) []model.ResultTuple {
	srcGrew, dstGrew := d.pg.Insert(tup)
	if !srcGrew && !dstGrew {
		return nil
	}

	var results []model.ResultTuple
	for _, pair := range d.dfa.TransitionsFor(tup.Label) {
		if pair.From == model.StartState && !d.delta.HasTree(tup.Source) {
			d.delta.AddTree(tup.Source)
		}

		key := model.VertexStatePair{Vertex: tup.Source, State: pair.From}
		for _, root := range d.delta.ContainingTrees(key) {
			tree, ok := d.delta.GetTree(root)
			if !ok {
				continue
			}
			updates := delta.TreeExpand(tree, d.delta, d.pg, key)
			d.delta.Requeue(tree)
			for _, u := range updates {
				if !d.dfa.IsFinal(u.Pair.State) {
					continue
				}
				results = append(results, model.ResultTuple{
					Root:     root,
					Vertex:   u.Pair.Vertex,
					State:    u.Pair.State,
					Interval: u.Interval,
				})
			}
		}
	}
	return results
}
