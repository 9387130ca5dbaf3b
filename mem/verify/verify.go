// Package verify provides validation functions for region block layouts.
// These helpers are used in tests and by callers that want to assert the
// allocator invariants after each mutation.
package verify

import (
	"fmt"

	"github.com/joshuapare/memsim/mem/alloc"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Index   int // block index, or -1 when the failure is not tied to a block
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at block %d: %s", e.Type, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all layout invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(blocks []alloc.Block, capacity int) error {
	if err := PositiveLengths(blocks); err != nil {
		return err
	}
	if err := Bounds(blocks, capacity); err != nil {
		return err
	}
	if err := Contiguity(blocks); err != nil {
		return err
	}
	if err := NoAdjacentFree(blocks); err != nil {
		return err
	}
	if err := UniqueOwners(blocks); err != nil {
		return err
	}
	return nil
}

// PositiveLengths checks that no block is empty or negative.
func PositiveLengths(blocks []alloc.Block) error {
	for i, b := range blocks {
		if b.Length <= 0 {
			return &ValidationError{
				Type:    "PositiveLengths",
				Message: fmt.Sprintf("block %q has length %d", b.Owner, b.Length),
				Index:   i,
			}
		}
	}
	return nil
}

// Bounds checks that the layout starts at 0 and ends exactly at capacity.
func Bounds(blocks []alloc.Block, capacity int) error {
	if len(blocks) == 0 {
		return &ValidationError{Type: "Bounds", Message: "no blocks", Index: -1}
	}
	if first := blocks[0]; first.Offset != 0 {
		return &ValidationError{
			Type:    "Bounds",
			Message: fmt.Sprintf("first block starts at %d, expected 0", first.Offset),
			Index:   0,
		}
	}
	last := blocks[len(blocks)-1]
	if last.End() != capacity {
		return &ValidationError{
			Type:    "Bounds",
			Message: fmt.Sprintf("last block ends at %d, expected capacity %d", last.End(), capacity),
			Index:   len(blocks) - 1,
		}
	}
	return nil
}

// Contiguity checks that each block starts where the previous one ends.
func Contiguity(blocks []alloc.Block) error {
	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		switch {
		case cur.Offset > prev.End():
			return &ValidationError{
				Type:    "Contiguity",
				Message: fmt.Sprintf("gap of %d units before offset %d", cur.Offset-prev.End(), cur.Offset),
				Index:   i,
			}
		case cur.Offset < prev.End():
			return &ValidationError{
				Type:    "Contiguity",
				Message: fmt.Sprintf("overlaps previous block by %d units", prev.End()-cur.Offset),
				Index:   i,
			}
		}
	}
	return nil
}

// NoAdjacentFree checks that free blocks were merged with their neighbours.
func NoAdjacentFree(blocks []alloc.Block) error {
	for i := 1; i < len(blocks); i++ {
		if blocks[i-1].IsFree() && blocks[i].IsFree() {
			return &ValidationError{
				Type:    "NoAdjacentFree",
				Message: fmt.Sprintf("free blocks at %d and %d not merged", blocks[i-1].Offset, blocks[i].Offset),
				Index:   i,
			}
		}
	}
	return nil
}

// UniqueOwners checks that no owner holds more than one block and that
// owned blocks carry a non-empty name.
func UniqueOwners(blocks []alloc.Block) error {
	seen := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.IsFree() {
			continue
		}
		if b.Owner == "" {
			return &ValidationError{Type: "UniqueOwners", Message: "block has empty owner", Index: i}
		}
		if first, dup := seen[b.Owner]; dup {
			return &ValidationError{
				Type:    "UniqueOwners",
				Message: fmt.Sprintf("owner %q also holds block %d", b.Owner, first),
				Index:   i,
			}
		}
		seen[b.Owner] = i
	}
	return nil
}
