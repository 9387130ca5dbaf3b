package alloc

// TotalFree returns the number of unallocated units.
func (r *Region) TotalFree() int {
	total := 0
	for _, b := range r.blocks {
		if b.IsFree() {
			total += b.Length
		}
	}
	return total
}

// TotalUsed returns the number of allocated units.
func (r *Region) TotalUsed() int {
	return r.capacity - r.TotalFree()
}

// FreeBlockCount returns the number of non-empty free blocks.
func (r *Region) FreeBlockCount() int {
	n := 0
	for _, b := range r.blocks {
		if b.IsFree() && b.Length > 0 {
			n++
		}
	}
	return n
}

// LargestFree returns the length of the largest free block, which is the
// largest request Allocate can currently satisfy.
func (r *Region) LargestFree() int {
	largest := 0
	for _, b := range r.blocks {
		if b.IsFree() && b.Length > largest {
			largest = b.Length
		}
	}
	return largest
}

// InternalFragmentation reports internal fragmentation. Actual is always 0
// under exact-fit allocation; LargeBlocks is the heuristic count of owned
// blocks longer than LargeBlockThreshold.
func (r *Region) InternalFragmentation() InternalFragmentation {
	frag := InternalFragmentation{Threshold: LargeBlockThreshold}
	for _, b := range r.blocks {
		if !b.IsFree() && b.Length > LargeBlockThreshold {
			frag.LargeBlocks++
		}
	}
	return frag
}

// ExternalFragmentation reports total free space together with the number
// of free extents holding it.
func (r *Region) ExternalFragmentation() ExternalFragmentation {
	return ExternalFragmentation{
		Free:    r.TotalFree(),
		Extents: r.FreeBlockCount(),
		Largest: r.LargestFree(),
	}
}
