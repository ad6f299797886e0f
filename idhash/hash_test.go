package idhash_test

import (
	"testing"

	"github.com/katalvlaran/windowrpq/idhash"
	"github.com/stretchr/testify/require"
)

func TestHashStringDeterministic(t *testing.T) {
	require.Equal(t, idhash.HashString("A"), idhash.HashString("A"))
	require.NotEqual(t, idhash.HashString("A"), idhash.HashString("B"))
}

func TestHashStringEmpty(t *testing.T) {
	require.Equal(t, idhash.HashString(""), idhash.HashString(""))
}
