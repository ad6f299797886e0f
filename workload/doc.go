// Package workload generates synthetic streams of model.StreamingGraphTuple
// over canonical topologies, for driver tests and benchmarks that need
// more than a handful of hand-written edges. Each topology constructor is
// deterministic given a seed, the same contract lvlath's builder package
// makes for its graph constructors, just emitting timestamped labeled
// tuples instead of mutating a stored graph.
package workload
