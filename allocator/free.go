package allocator

// Free returns a block previously obtained from Alloc to the heap. Freeing
// nil (an empty, zero-cap slice) is a no-op and returns nil (spec §4.4
// step 1 / §7 "free(null) is explicitly not an error").
//
// Free returns ErrInvalidPointer if block's header magic does not match —
// it was not returned by this allocator, or the pointer has been corrupted
// — and ErrDoubleFree if the block is already marked free. Neither failure
// mutates the block or the list (spec §7).
func (a *Allocator) Free(block []byte) error {
	b, ok := a.blockFromPayload(block)
	if !ok {
		if len(block) == 0 && cap(block) == 0 {
			return nil
		}
		return ErrInvalidPointer
	}

	hdr := a.header(b)
	if hdr.magic != blockMagic {
		return ErrInvalidPointer
	}
	if hdr.free() {
		return ErrDoubleFree
	}

	hdr.setFree(true)

	b = a.mergeRight(b)
	b = a.mergeLeft(b)

	return nil
}

// mergeRight absorbs b's next sibling into b if that sibling is free,
// re-establishing invariant 3 (no adjacent free blocks) from the right side
// (spec §4.4 step 4). Returns b (unchanged offset — merging right never
// moves b's own link record).
func (a *Allocator) mergeRight(b offset) offset {
	lr := a.linkAt(b)
	if lr.next == nullOffset {
		return b
	}
	nextHdr := a.header(lr.next)
	if !nextHdr.free() {
		return b
	}

	absorbed := lr.next
	nextLR := a.linkAt(absorbed)

	hdr := a.headerAt(lr.header)
	hdr.size += uint64(linkSize) + uint64(headerSize) + nextHdr.size

	lr.next = nextLR.next
	if lr.next != nullOffset {
		a.linkAt(lr.next).prev = b
	}

	if a.cursor == absorbed {
		a.cursor = nullOffset
	}

	return b
}

// mergeLeft absorbs b into its previous sibling if that sibling is free,
// re-establishing invariant 3 from the left side (spec §4.4 step 5).
// Returns the offset of the surviving block: prev if a merge happened,
// b otherwise.
func (a *Allocator) mergeLeft(b offset) offset {
	lr := a.linkAt(b)
	if lr.prev == nullOffset {
		return b
	}
	prevHdr := a.header(lr.prev)
	if !prevHdr.free() {
		return b
	}

	prev := lr.prev
	prevLR := a.linkAt(prev)
	bHdr := a.headerAt(lr.header)

	prevHdrPtr := a.headerAt(prevLR.header)
	prevHdrPtr.size += uint64(linkSize) + uint64(headerSize) + bHdr.size

	prevLR.next = lr.next
	if lr.next != nullOffset {
		a.linkAt(lr.next).prev = prev
	}

	if a.cursor == b {
		a.cursor = nullOffset
	}

	return prev
}
