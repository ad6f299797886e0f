package idhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/windowrpq/model"
)

// HashString computes the stable VertexID for a human-readable vertex key.
// The hash is a pure function of the bytes of s: same key, same process or
// not, always yields the same VertexID, which is required for join
// correctness when multiple sources name the same vertex by string key.
func HashString(s string) model.VertexID {
	return model.VertexID(xxhash.Sum64String(s))
}

// HashLabel computes a stable identifier for an edge label, useful when a
// caller wants to key an auxiliary structure by label without carrying the
// string around.
func HashLabel(l model.Label) uint64 {
	return xxhash.Sum64String(string(l))
}
