package driver

import (
	"github.com/katalvlaran/windowrpq/model"
	"github.com/katalvlaran/windowrpq/rpqlog"
)

// WindowConfig describes the sliding window applied to raw, instantaneous
// edge observations: WindowSize is how long an observation admitted at
// time t stays valid ([t, t+WindowSize)); SlideSize is the step between
// successive Close calls an external ingestion loop is expected to use
// (the driver itself is agnostic to it — Close accepts whatever logical
// time the caller passes).
type WindowConfig struct {
	WindowSize uint64
	SlideSize  uint64
}

// NewWindowConfig builds a WindowConfig, panicking on a zero window size.
func NewWindowConfig(windowSize, slideSize uint64) WindowConfig {
	if windowSize == 0 {
		panic(ErrInvalidWindowSize)
	}
	return WindowConfig{WindowSize: windowSize, SlideSize: slideSize}
}

// Materialize turns a raw (source, label, target, timestamp) observation
// into a model.StreamingGraphTuple valid for [timestamp, timestamp+WindowSize).
func (c WindowConfig) Materialize(source, target model.VertexID, label model.Label, timestamp uint64) model.StreamingGraphTuple {
	return model.StreamingGraphTuple{
		Source: source,
		Target: target,
		Label:  label,
		Interval: model.HalfOpenInterval{
			Start: timestamp,
			End:   timestamp + c.WindowSize,
		},
	}
}

// Option customizes a Driver at construction time.
type Option func(*driverConfig)

type driverConfig struct {
	logger      *rpqlog.Logger
	labelFilter func(model.Label) bool
}

// WithLogger attaches a logger the driver uses to report tree-node expiry
// at debug level. Defaults to a discarding logger.
func WithLogger(l *rpqlog.Logger) Option {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}
	return func(c *driverConfig) { c.logger = l }
}

// WithLabelFilter installs a predicate that drops admitted tuples whose
// label it rejects before they are ever stashed. This is an optimization,
// not a correctness requirement: the automaton's own TransitionsFor
// already treats an out-of-alphabet label as a no-op, so an unfiltered
// Driver behaves identically, just after doing a little useless bookkeeping.
func WithLabelFilter(fn func(model.Label) bool) Option {
	if fn == nil {
		panic("driver: WithLabelFilter(nil)")
	}
	return func(c *driverConfig) { c.labelFilter = fn }
}

func newDriverConfig(opts ...Option) driverConfig {
	cfg := driverConfig{logger: rpqlog.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
