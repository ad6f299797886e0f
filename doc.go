// Package windowrpq is an incremental evaluator for regular path queries
// (RPQs) over a sliding window of timestamped, labeled, directed edges.
//
// A query such as "knows/likes*" is compiled once (package automaton) into
// a minimized DFA over edge labels. As tuples stream in, a Driver
// (package driver) maintains, per candidate start vertex, a spanning tree
// of every (vertex, automaton state) pair reachable so far within the
// current window (package delta), driven off a live, label-indexed,
// expiry-prioritized edge index (package productgraph). Every piece is
// addressed by key rather than by pointer, so trees and edge tables can be
// grown, rewired, and pruned purely through map and priority-queue
// operations — no shared mutable graph of Go pointers to reason about.
//
// Under the hood:
//
//	model/       — VertexID, Label, StateID, HalfOpenInterval, stream tuples
//	automaton/   — RPQ parser, Thompson construction, determinize, minimize
//	pqindex/     — generic indexed min-priority-queue
//	productgraph/ — windowed, label-indexed, expiry-prioritized edge index
//	delta/       — per-root spanning trees and the tree-expansion algorithm
//	driver/      — ties the above into Admit/Close per logical time step
//	workload/    — synthetic tuple-stream generators for tests and benchmarks
//	idhash/      — stable hashing from string vertex keys to VertexID
//	rpqlog/      — structured logging
//
//	go get github.com/katalvlaran/windowrpq
package windowrpq
