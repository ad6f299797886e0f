package model_test

import (
	"testing"

	"github.com/katalvlaran/windowrpq/model"
	"github.com/stretchr/testify/require"
)

func TestHalfOpenIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     model.HalfOpenInterval
		expected bool
	}{
		{"equal start always overlaps", model.HalfOpenInterval{0, 5}, model.HalfOpenInterval{0, 1}, true},
		{"disjoint, a before b", model.HalfOpenInterval{0, 5}, model.HalfOpenInterval{5, 10}, false},
		{"disjoint, a after b", model.HalfOpenInterval{5, 10}, model.HalfOpenInterval{0, 5}, false},
		{"a starts later, within b", model.HalfOpenInterval{3, 4}, model.HalfOpenInterval{0, 5}, true},
		{"a starts earlier, contains b's start", model.HalfOpenInterval{0, 5}, model.HalfOpenInterval{3, 10}, true},
		{"touching at a boundary, a first", model.HalfOpenInterval{0, 3}, model.HalfOpenInterval{3, 6}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
		})
	}
}

func TestHalfOpenIntervalIntersect(t *testing.T) {
	a := model.HalfOpenInterval{Start: 2, End: 10}
	b := model.HalfOpenInterval{Start: 5, End: 20}
	got := a.Intersect(b)
	require.Equal(t, model.HalfOpenInterval{Start: 5, End: 10}, got)
	require.False(t, got.Empty())
}

func TestHalfOpenIntervalMerge(t *testing.T) {
	a := model.HalfOpenInterval{Start: 2, End: 10}
	b := model.HalfOpenInterval{Start: 5, End: 20}
	require.Equal(t, model.HalfOpenInterval{Start: 2, End: 20}, a.Merge(b))
}

func TestHalfOpenIntervalEmpty(t *testing.T) {
	require.True(t, model.HalfOpenInterval{Start: 5, End: 5}.Empty())
	require.True(t, model.HalfOpenInterval{Start: 6, End: 5}.Empty())
	require.False(t, model.HalfOpenInterval{Start: 5, End: 6}.Empty())
}
