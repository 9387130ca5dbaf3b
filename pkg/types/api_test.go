package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "alloc", KindAlloc.String())
	require.Equal(t, "external", KindExternal.String())
	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKind_Mutates(t *testing.T) {
	for _, k := range []Kind{KindAlloc, KindFree, KindCompact, KindReset} {
		require.True(t, k.Mutates(), k.String())
	}
	for _, k := range []Kind{KindShow, KindInternal, KindExternal, KindStats, KindHelp, KindExit} {
		require.False(t, k.Mutates(), k.String())
	}
}

func TestCommand_String(t *testing.T) {
	require.Equal(t, "alloc A 10", Alloc("A", 10).String())
	require.Equal(t, "free A", Free("A").String())
	require.Equal(t, "reset", Command{Kind: KindReset}.String())
	require.Equal(t, "reset 128", Command{Kind: KindReset, Size: 128}.String())
	require.Equal(t, "compact", Command{Kind: KindCompact}.String())
}
