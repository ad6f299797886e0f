package workload

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/windowrpq/model"
)

// ErrTooFewVertices is returned by a topology constructor asked to build a
// degenerate graph (fewer vertices than the topology requires).
var ErrTooFewVertices = errors.New("workload: too few vertices")

// Option customizes stream generation.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	labels         []model.Label
	timestampStep  uint64
	defaultEnd     uint64
	idPrefix       string
}

// WithSeed sets the seed of the source that picks each edge's label.
// Without it, a fixed default seed of 1 is used, so output is reproducible
// either way; timestamps never depend on the seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLabels overrides the label alphabet drawn from for each edge.
// Panics on an empty slice.
func WithLabels(labels ...model.Label) Option {
	if len(labels) == 0 {
		panic("workload: WithLabels() requires at least one label")
	}
	return func(c *config) { c.labels = labels }
}

// WithTimestampStep sets the spacing between successive edges' admission
// timestamps. Panics if step is zero.
func WithTimestampStep(step uint64) Option {
	if step == 0 {
		panic("workload: WithTimestampStep(0)")
	}
	return func(c *config) { c.timestampStep = step }
}

// WithIntervalEnd sets the validity end offset applied to every emitted
// tuple's interval, relative to its own start timestamp. Panics if end is
// zero.
func WithIntervalEnd(end uint64) Option {
	if end == 0 {
		panic("workload: WithIntervalEnd(0)")
	}
	return func(c *config) { c.defaultEnd = end }
}

// WithIDPrefix sets the string prefix used when turning a vertex index
// into a human-readable key before hashing it to a model.VertexID.
func WithIDPrefix(prefix string) Option {
	return func(c *config) { c.idPrefix = prefix }
}

func newConfig(opts ...Option) config {
	c := config{
		rng:           rand.New(rand.NewSource(1)),
		labels:        []model.Label{"rel"},
		timestampStep: 1,
		defaultEnd:    100,
		idPrefix:      "v",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) label() model.Label {
	return c.labels[c.rng.Intn(len(c.labels))]
}
