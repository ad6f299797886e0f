package automaton_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/windowrpq/automaton"
	"github.com/katalvlaran/windowrpq/model"
	"github.com/stretchr/testify/require"
)

func words(labels ...string) []model.Label {
	out := make([]model.Label, len(labels))
	for i, l := range labels {
		out[i] = model.Label(l)
	}
	return out
}

func TestCompileLiteral(t *testing.T) {
	dfa, err := automaton.Compile("knows")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words("knows")))
	require.False(t, dfa.Accepts(words()))
	require.False(t, dfa.Accepts(words("knows", "knows")))
}

func TestCompileConcatenation(t *testing.T) {
	dfa, err := automaton.Compile("knows/likes")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words("knows", "likes")))
	require.False(t, dfa.Accepts(words("knows")))
	require.False(t, dfa.Accepts(words("likes", "knows")))
}

func TestCompileAlternation(t *testing.T) {
	dfa, err := automaton.Compile("knows|likes")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words("knows")))
	require.True(t, dfa.Accepts(words("likes")))
	require.False(t, dfa.Accepts(words("follows")))
}

func TestCompileKleeneStar(t *testing.T) {
	dfa, err := automaton.Compile("knows*")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words()))
	require.True(t, dfa.Accepts(words("knows")))
	require.True(t, dfa.Accepts(words("knows", "knows", "knows")))
	require.False(t, dfa.Accepts(words("likes")))
}

func TestCompileKleenePlus(t *testing.T) {
	dfa, err := automaton.Compile("knows+")
	require.NoError(t, err)
	require.False(t, dfa.Accepts(words()))
	require.True(t, dfa.Accepts(words("knows")))
	require.True(t, dfa.Accepts(words("knows", "knows")))
}

func TestCompileGrouping(t *testing.T) {
	dfa, err := automaton.Compile("(knows/likes)*")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words()))
	require.True(t, dfa.Accepts(words("knows", "likes")))
	require.True(t, dfa.Accepts(words("knows", "likes", "knows", "likes")))
	require.False(t, dfa.Accepts(words("knows")))
}

func TestCompileComplexQuery(t *testing.T) {
	dfa, err := automaton.Compile("a/(b|c)+/d")
	require.NoError(t, err)
	require.True(t, dfa.Accepts(words("a", "b", "d")))
	require.True(t, dfa.Accepts(words("a", "c", "d")))
	require.True(t, dfa.Accepts(words("a", "b", "c", "b", "d")))
	require.False(t, dfa.Accepts(words("a", "d")))
}

func TestCompileEmptyPath(t *testing.T) {
	_, err := automaton.Compile("")
	require.Error(t, err)
	require.ErrorIs(t, err, automaton.ErrEmptyPath)

	_, err = automaton.Compile("   ")
	require.ErrorIs(t, err, automaton.ErrEmptyPath)
}

func TestCompileBoundedRepetitionUnsupported(t *testing.T) {
	_, err := automaton.Compile("knows{2,4}")
	require.Error(t, err)
	require.ErrorIs(t, err, automaton.ErrBoundedRepetitionUnsupported)

	var perr *automaton.ParseError
	require.True(t, errors.As(err, &perr))
}

func TestCompileUnrecognizedSyntax(t *testing.T) {
	cases := []string{"(knows", "knows)", "|knows", "knows||likes", "knows/"}
	for _, q := range cases {
		_, err := automaton.Compile(q)
		require.Errorf(t, err, "expected error for query %q", q)
		require.ErrorIs(t, err, automaton.ErrUnrecognizedSyntax)
	}
}

func TestDFAStartStateIsZero(t *testing.T) {
	dfa, err := automaton.Compile("a|b")
	require.NoError(t, err)
	require.False(t, dfa.IsFinal(model.StartState))
}

func TestDFATransitionsFor(t *testing.T) {
	dfa, err := automaton.Compile("a/b")
	require.NoError(t, err)
	pairs := dfa.TransitionsFor("a")
	require.NotEmpty(t, pairs)
	for _, pair := range pairs {
		to, ok := dfa.Step(pair.From, "a")
		require.True(t, ok)
		require.Equal(t, pair.To, to)
	}
}

func TestDFAAcceptsPanicsOnAlphabetMismatch(t *testing.T) {
	dfa, err := automaton.Compile("a")
	require.NoError(t, err)
	require.Panics(t, func() {
		dfa.Accepts(words("z"))
	})
}

func TestMinimizationMergesEquivalentStates(t *testing.T) {
	// Subset construction gives "a/b|c/b" five states and "(a|c)/b" four;
	// minimization merges the equivalent ones so both end with three.
	combined, err := automaton.Compile("a/b|c/b")
	require.NoError(t, err)
	plain, err := automaton.Compile("(a|c)/b")
	require.NoError(t, err)
	require.Equal(t, plain.NumStates(), combined.NumStates())
}
