// Package delta maintains, per candidate start vertex, a spanning tree of
// (vertex, state) pairs reachable from that vertex along paths the query
// automaton accepts so far, plus an inverted index from (vertex, state)
// back to every tree that currently contains it. TreeExpand is the
// worklist algorithm that grows and rewires those trees whenever the
// product-graph index reports new or strengthened evidence.
package delta
