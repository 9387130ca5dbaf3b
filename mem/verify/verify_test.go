package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/mem/alloc"
)

func validLayout() []alloc.Block {
	return []alloc.Block{
		{Owner: "A", Offset: 0, Length: 10},
		{Owner: alloc.FreeOwner, Offset: 10, Length: 5},
		{Owner: "B", Offset: 15, Length: 20},
		{Owner: alloc.FreeOwner, Offset: 35, Length: 29},
	}
}

// TestAllInvariants_Valid tests that a well-formed layout passes.
func TestAllInvariants_Valid(t *testing.T) {
	require.NoError(t, AllInvariants(validLayout(), 64))
}

func TestAllInvariants_SingleFreeBlock(t *testing.T) {
	blocks := []alloc.Block{{Owner: alloc.FreeOwner, Offset: 0, Length: 64}}
	require.NoError(t, AllInvariants(blocks, 64))
}

func TestBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		err := Bounds(nil, 64)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no blocks")
	})

	t.Run("first offset", func(t *testing.T) {
		blocks := validLayout()
		blocks[0].Offset = 1
		err := Bounds(blocks, 64)
		require.Error(t, err)
		require.Contains(t, err.Error(), "expected 0")
	})

	t.Run("short of capacity", func(t *testing.T) {
		err := Bounds(validLayout(), 65)
		require.Error(t, err)
		require.Contains(t, err.Error(), "expected capacity 65")
	})
}

func TestContiguity(t *testing.T) {
	t.Run("gap", func(t *testing.T) {
		blocks := validLayout()
		blocks[2].Offset = 16
		err := Contiguity(blocks)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Contiguity", verr.Type)
		require.Equal(t, 2, verr.Index)
		require.Contains(t, verr.Message, "gap of 1 units")
	})

	t.Run("overlap", func(t *testing.T) {
		blocks := validLayout()
		blocks[1].Offset = 8
		err := Contiguity(blocks)
		require.Error(t, err)
		require.Contains(t, err.Error(), "overlaps")
	})
}

func TestNoAdjacentFree(t *testing.T) {
	blocks := []alloc.Block{
		{Owner: alloc.FreeOwner, Offset: 0, Length: 10},
		{Owner: alloc.FreeOwner, Offset: 10, Length: 54},
	}
	err := NoAdjacentFree(blocks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not merged")

	// AllInvariants reaches the same check once bounds and contiguity pass.
	require.Error(t, AllInvariants(blocks, 64))
}

func TestUniqueOwners(t *testing.T) {
	blocks := validLayout()
	blocks[2].Owner = "A"
	err := UniqueOwners(blocks)
	require.Error(t, err)
	require.Contains(t, err.Error(), `owner "A" also holds block 0`)

	blocks[2].Owner = ""
	err = UniqueOwners(blocks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty owner")
}

func TestPositiveLengths(t *testing.T) {
	blocks := validLayout()
	blocks[1].Length = 0
	err := PositiveLengths(blocks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at block 1")
}

func TestValidationError_NoIndex(t *testing.T) {
	err := &ValidationError{Type: "Bounds", Message: "no blocks", Index: -1}
	require.Equal(t, "Bounds: no blocks", err.Error())
}
