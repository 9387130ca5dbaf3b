package alloc

const (
	// FreeOwner is the owner sentinel carried by unallocated blocks.
	// It can never be used as a process identifier.
	FreeOwner = "FREE"

	// DefaultCapacity replaces non-positive capacities passed to New.
	DefaultCapacity = 64

	// LargeBlockThreshold is the length above which an owned block is counted
	// by the internal fragmentation heuristic.
	LargeBlockThreshold = 5
)

// Block is a contiguous, non-empty sub-range of a Region.
type Block struct {
	Owner  string `json:"owner"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// IsFree reports whether the block is unallocated.
func (b Block) IsFree() bool { return b.Owner == FreeOwner }

// End returns the offset one past the last unit of the block.
func (b Block) End() int { return b.Offset + b.Length }

// InternalFragmentation separates the true internal fragmentation of the
// exact-fit model from the teaching heuristic.
type InternalFragmentation struct {
	// Actual is the real waste inside allocations. Every allocation receives
	// exactly the requested length, so this is always 0.
	Actual int

	// LargeBlocks counts owned blocks longer than Threshold. It is a
	// classroom annotation, not a measure of wasted units.
	LargeBlocks int

	// Threshold is the length used by the LargeBlocks heuristic.
	Threshold int
}

// ExternalFragmentation describes how free space is distributed.
type ExternalFragmentation struct {
	Free    int // total free units
	Extents int // number of disjoint free blocks holding them
	Largest int // largest single free block
}

// Fragmented reports whether free space is split across more than one block.
func (e ExternalFragmentation) Fragmented() bool { return e.Extents > 1 }

// Stats holds allocator counters for instrumentation and tests.
type Stats struct {
	AllocCalls    int // Allocate calls, including rejected ones
	AllocFailures int // Allocate calls that returned an error
	ExactFits     int // allocations that consumed a whole free block
	Splits        int // allocations that split a free block
	FreeCalls     int // successful Release calls
	Merges        int // free blocks absorbed by coalescing
	CompactCalls  int // Compact calls
	BlocksMoved   int // owned blocks whose offset changed during compaction
}
