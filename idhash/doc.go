// Package idhash turns human-readable vertex keys into the stable 64-bit
// model.VertexID used throughout windowrpq. It is the one place the
// evaluator core touches a string: every other package deals in VertexID
// values only.
package idhash
