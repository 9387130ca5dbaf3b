package alloc

import (
	"fmt"
	"os"
	"slices"
)

// Runtime debug flag for allocation logging - controlled by MEMSIM_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMSIM_LOG_ALLOC") != ""

// Region is a fixed-capacity address space divided into ordered blocks.
type Region struct {
	capacity int

	// Ordered by offset, contiguous from 0 to capacity.
	blocks []Block

	stats Stats
}

// New creates a region holding a single free block of the given capacity.
//
// A non-positive capacity is replaced by DefaultCapacity and the returned
// *ConfigWarning describes the substitution. The region is usable either way.
func New(capacity int) (*Region, *ConfigWarning) {
	var warn *ConfigWarning
	if capacity <= 0 {
		warn = &ConfigWarning{Requested: capacity, Used: DefaultCapacity}
		capacity = DefaultCapacity
	}

	r := &Region{
		capacity: capacity,
		blocks:   make([]Block, 0, 8),
	}
	r.blocks = append(r.blocks, Block{Owner: FreeOwner, Offset: 0, Length: capacity})
	return r, warn
}

// Capacity returns the total number of units in the region.
func (r *Region) Capacity() int { return r.capacity }

// Allocate places length units for owner in the first free block that fits.
//
// The returned Block describes the placement. On error the region is
// unchanged; errors wrap ErrInvalidSize, ErrEmptyOwner, ErrReservedName,
// ErrDuplicateOwner or ErrInsufficientSpace.
func (r *Region) Allocate(owner string, length int) (Block, error) {
	r.stats.AllocCalls++

	if err := r.checkAllocate(owner, length); err != nil {
		r.stats.AllocFailures++
		return Block{}, err
	}

	i := r.firstFit(length)
	if i < 0 {
		r.stats.AllocFailures++
		return Block{}, fmt.Errorf(
			"%w: %q needs %d units, largest free block has %d (try compacting)",
			ErrInsufficientSpace, owner, length, r.LargestFree(),
		)
	}

	free := r.blocks[i]
	placed := Block{Owner: owner, Offset: free.Offset, Length: length}

	if free.Length == length {
		r.stats.ExactFits++
		r.blocks[i].Owner = owner
	} else {
		r.stats.Splits++
		r.blocks[i].Offset += length
		r.blocks[i].Length -= length
		r.blocks = slices.Insert(r.blocks, i, placed)
	}

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] %q: %d units at %d (free block %d+%d)\n",
			owner, length, placed.Offset, free.Offset, free.Length)
	}
	return placed, nil
}

func (r *Region) checkAllocate(owner string, length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, length)
	}
	if owner == "" {
		return ErrEmptyOwner
	}
	if owner == FreeOwner {
		return fmt.Errorf("%w: %q", ErrReservedName, owner)
	}
	if r.indexOf(owner) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateOwner, owner)
	}
	return nil
}

// firstFit returns the index of the lowest-offset free block holding at
// least length units, or -1.
func (r *Region) firstFit(length int) int {
	for i, b := range r.blocks {
		if b.IsFree() && b.Length >= length {
			return i
		}
	}
	return -1
}

func (r *Region) indexOf(owner string) int {
	for i, b := range r.blocks {
		if b.Owner == owner {
			return i
		}
	}
	return -1
}

// Release frees the block held by owner and merges it with any free
// neighbours. The returned Block is the extent that was released, before
// merging.
func (r *Region) Release(owner string) (Block, error) {
	if owner == "" {
		return Block{}, ErrEmptyOwner
	}
	if owner == FreeOwner {
		return Block{}, fmt.Errorf("%w: cannot release %q", ErrReservedName, owner)
	}

	i := r.indexOf(owner)
	if i < 0 {
		return Block{}, fmt.Errorf("%w: %q", ErrNotFound, owner)
	}

	released := r.blocks[i]
	r.blocks[i].Owner = FreeOwner
	r.stats.FreeCalls++

	merged := r.coalesce()
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] release %q: %d+%d, merged %d free blocks\n",
			owner, released.Offset, released.Length, merged)
	}
	return released, nil
}

// coalesce folds every run of adjacent free blocks into one block and
// returns how many blocks were absorbed. Running it twice is a no-op.
func (r *Region) coalesce() int {
	if len(r.blocks) == 0 {
		return 0
	}

	merged := make([]Block, 0, len(r.blocks))
	merged = append(merged, r.blocks[0])
	absorbed := 0

	for _, b := range r.blocks[1:] {
		last := &merged[len(merged)-1]
		if last.IsFree() && b.IsFree() {
			last.Length += b.Length
			absorbed++
			continue
		}
		merged = append(merged, b)
	}

	r.blocks = merged
	r.stats.Merges += absorbed
	return absorbed
}

// Compact moves every owned block to the front of the region, keeping their
// relative order, and leaves at most one free block at the end.
func (r *Region) Compact() {
	r.stats.CompactCalls++

	compacted := make([]Block, 0, len(r.blocks))
	cursor := 0
	moved := 0

	for _, b := range r.blocks {
		if b.IsFree() {
			continue
		}
		if b.Offset != cursor {
			moved++
		}
		compacted = append(compacted, Block{Owner: b.Owner, Offset: cursor, Length: b.Length})
		cursor += b.Length
	}

	if cursor < r.capacity {
		compacted = append(compacted, Block{
			Owner:  FreeOwner,
			Offset: cursor,
			Length: r.capacity - cursor,
		})
	}

	r.blocks = compacted
	r.stats.BlocksMoved += moved

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] compact: moved %d blocks, %d units free at %d\n",
			moved, r.capacity-cursor, cursor)
	}
}

// Snapshot returns a copy of the block sequence in offset order.
func (r *Region) Snapshot() []Block {
	return slices.Clone(r.blocks)
}

// Lookup returns the block held by owner.
func (r *Region) Lookup(owner string) (Block, bool) {
	if owner == FreeOwner {
		return Block{}, false
	}
	i := r.indexOf(owner)
	if i < 0 {
		return Block{}, false
	}
	return r.blocks[i], true
}

// Stats returns a copy of the allocator counters.
func (r *Region) Stats() Stats { return r.stats }
