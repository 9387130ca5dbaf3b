// Package alloc implements a first-fit contiguous block allocator over a single
// fixed-size region.
//
// # Overview
//
// A Region models one linear address space of Capacity units. It is always
// fully described by an ordered slice of Blocks: every unit belongs to
// exactly one block, and every block is either owned by a named entity or
// free (owner FreeOwner).
//
// # Operations
//
//   - Allocate(owner, n): first-fit search, splitting the chosen free block
//   - Release(owner): mark the owner's block free, then merge adjacent free blocks
//   - Compact(): slide all owned blocks to the front, preserving their order
//
// Queries (TotalFree, FreeBlockCount, InternalFragmentation,
// ExternalFragmentation, Snapshot) never mutate the region.
//
// # Usage Example
//
//	r, warn := alloc.New(64)
//	if warn != nil {
//	    log.Println(warn)
//	}
//
//	b, err := r.Allocate("A", 10)
//	if errors.Is(err, alloc.ErrInsufficientSpace) {
//	    r.Compact()
//	}
//	fmt.Println(b.Offset)
//
//	_, err = r.Release("A")
//
// # Invariants
//
// After every mutating call the block slice is contiguous from 0 to
// Capacity, holds no zero-length blocks, never has two adjacent free blocks
// and carries each owner at most once. Validation runs before mutation, so a
// failed call leaves the region untouched.
//
// # Thread Safety
//
// Region instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Debugging
//
// Set MEMSIM_LOG_ALLOC to any value to trace allocator decisions on stderr.
package alloc
