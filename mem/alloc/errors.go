package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive allocation length.
	ErrInvalidSize = errors.New("alloc: size must be positive")

	// ErrEmptyOwner indicates an empty owner identifier.
	ErrEmptyOwner = errors.New("alloc: owner must not be empty")

	// ErrReservedName indicates use of the free sentinel as an owner.
	ErrReservedName = errors.New("alloc: owner name is reserved")

	// ErrDuplicateOwner indicates the owner already holds a block.
	ErrDuplicateOwner = errors.New("alloc: owner already holds a block")

	// ErrInsufficientSpace indicates that no free block is large enough.
	ErrInsufficientSpace = errors.New("alloc: no free block large enough")

	// ErrNotFound indicates that no block carries the given owner.
	ErrNotFound = errors.New("alloc: owner not found")
)

// ConfigWarning reports that a requested capacity was unusable and the
// default was substituted. It is informational; the region is valid.
type ConfigWarning struct {
	Requested int
	Used      int
}

func (w *ConfigWarning) Error() string {
	return fmt.Sprintf("alloc: invalid capacity %d, using %d", w.Requested, w.Used)
}
