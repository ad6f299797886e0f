package driver_test

import (
	"testing"

	"github.com/katalvlaran/windowrpq/automaton"
	"github.com/katalvlaran/windowrpq/driver"
	"github.com/katalvlaran/windowrpq/model"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, q string) *automaton.DFA {
	t.Helper()
	dfa, err := automaton.Compile(q)
	require.NoError(t, err)
	return dfa
}

func TestDriverSingleStepMatch(t *testing.T) {
	dfa := mustCompile(t, "knows")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 100}})
	results := d.Close(0)

	require.Len(t, results, 1)
	require.Equal(t, model.VertexID(1), results[0].Root)
	require.Equal(t, model.VertexID(2), results[0].Vertex)
	require.True(t, dfa.IsFinal(results[0].State))
}

func TestDriverChainAcrossTwoSteps(t *testing.T) {
	dfa := mustCompile(t, "a/b")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "a", Interval: model.HalfOpenInterval{Start: 0, End: 100}})
	results := d.Close(0)
	require.Empty(t, results, "mid-path state is never final")

	d.Admit(model.StreamingGraphTuple{Source: 2, Target: 3, Label: "b", Interval: model.HalfOpenInterval{Start: 1, End: 100}})
	results = d.Close(1)

	require.Len(t, results, 1)
	require.Equal(t, model.VertexID(1), results[0].Root)
	require.Equal(t, model.VertexID(3), results[0].Vertex)
	require.Equal(t, uint64(1), results[0].Interval.Start)
	require.Equal(t, uint64(100), results[0].Interval.End)
}

func TestDriverExpiryRemovesMatch(t *testing.T) {
	dfa := mustCompile(t, "knows")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(10, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 10}})
	results := d.Close(0)
	require.Len(t, results, 1)

	results = d.Close(10)
	require.Empty(t, results, "edge should have expired by t=10 (End is exclusive)")
}

func TestDriverAdmitKeepsStrongerInterval(t *testing.T) {
	dfa := mustCompile(t, "knows")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 10}})
	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 90}})

	results := d.Close(0)
	require.Len(t, results, 1)
	require.Equal(t, uint64(90), results[0].Interval.End)
}

func TestDriverLabelFilterDropsUnrelatedTuples(t *testing.T) {
	dfa := mustCompile(t, "knows")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10), driver.WithLabelFilter(func(l model.Label) bool {
		return l == "knows"
	}))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "dislikes", Interval: model.HalfOpenInterval{Start: 0, End: 100}})
	results := d.Close(0)
	require.Empty(t, results)
}

func TestDriverEveryVertexIsACandidateRoot(t *testing.T) {
	dfa := mustCompile(t, "a")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "a", Interval: model.HalfOpenInterval{Start: 0, End: 50}})
	d.Admit(model.StreamingGraphTuple{Source: 2, Target: 3, Label: "a", Interval: model.HalfOpenInterval{Start: 0, End: 50}})

	results := d.Close(0)
	require.Len(t, results, 2)
	require.Equal(t, model.VertexID(1), results[0].Root)
	require.Equal(t, model.VertexID(2), results[0].Vertex)
	require.Equal(t, model.VertexID(2), results[1].Root)
	require.Equal(t, model.VertexID(3), results[1].Vertex)
}

func TestDriverReAdmitUnchangedTupleDoesNotReEmit(t *testing.T) {
	dfa := mustCompile(t, "knows")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 10}})
	results := d.Close(0)
	require.Len(t, results, 1, "first admission of a matching edge emits once")

	d.Admit(model.StreamingGraphTuple{Source: 1, Target: 2, Label: "knows", Interval: model.HalfOpenInterval{Start: 0, End: 10}})
	results = d.Close(5)
	require.Empty(t, results, "re-admitting the same edge with no improvement must not re-emit the already-known match")
}

func TestDriverOnlyTransitioningLabelCreatesTree(t *testing.T) {
	dfa := mustCompile(t, "a/b")
	d := driver.NewDriver(dfa, driver.NewWindowConfig(100, 10))

	// vertex 5 first appears only as the source of a "b" edge, which has
	// no transition from the start state for this query — it must not
	// become a root. Only once it also sources an "a" edge does a match
	// become reachable through it.
	d.Admit(model.StreamingGraphTuple{Source: 5, Target: 6, Label: "b", Interval: model.HalfOpenInterval{Start: 0, End: 50}})
	results := d.Close(0)
	require.Empty(t, results)

	d.Admit(model.StreamingGraphTuple{Source: 5, Target: 7, Label: "a", Interval: model.HalfOpenInterval{Start: 0, End: 50}})
	d.Admit(model.StreamingGraphTuple{Source: 7, Target: 8, Label: "b", Interval: model.HalfOpenInterval{Start: 0, End: 50}})
	results = d.Close(1)

	require.Len(t, results, 1)
	require.Equal(t, model.VertexID(5), results[0].Root)
	require.Equal(t, model.VertexID(8), results[0].Vertex)
}

func TestWindowConfigMaterialize(t *testing.T) {
	cfg := driver.NewWindowConfig(50, 10)
	tup := cfg.Materialize(1, 2, "knows", 100)
	require.Equal(t, model.HalfOpenInterval{Start: 100, End: 150}, tup.Interval)
}

func TestNewWindowConfigPanicsOnZeroWindow(t *testing.T) {
	require.Panics(t, func() {
		driver.NewWindowConfig(0, 10)
	})
}
