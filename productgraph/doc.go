// Package productgraph maintains the live, windowed edge set the streaming
// driver matches query automaton transitions against: for every vertex, a
// forward and backward adjacency table keyed by edge label, each holding
// neighbors prioritized by edge expiry so that watermark-driven eviction
// only ever has to look at the entries that are actually expiring.
package productgraph
