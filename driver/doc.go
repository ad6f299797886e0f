// Package driver ties the automaton, product-graph index, and delta index
// together into the incremental sliding-window evaluator: callers Admit
// tuples as they arrive and Close each logical time step, receiving the
// path matches that newly became valid, or whose validity newly
// strengthened, during that step. A tuple that improves nothing yields no
// result — a match is never re-emitted just because its supporting edge
// was re-admitted unchanged.
//
// Close always runs in the same order: evict expired product-graph edges,
// then expire stale tree nodes, then apply this step's admitted tuples.
// Each insertion that actually extends a known edge's validity expands
// every tree it touches and emits exactly the (vertex, state, interval)
// updates that expansion produced, for those that land on a final state.
// Evicting before inserting matters: a tuple admitted for logical time t
// must never be matched against an edge that should already have expired
// as of t.
package driver
