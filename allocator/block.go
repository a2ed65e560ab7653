package allocator

import "unsafe"

// offset is a byte index into an Allocator's region. It plays the role of a
// pointer without being one — see design note in SPEC_FULL.md §9: blocks are
// (offset, length) pairs into a single owned buffer, not raw pointer casts.
type offset int64

// nullOffset is the sentinel for "no such block" (a nil prev/next/head).
const nullOffset offset = -1

const (
	// linkSize is sizeof(link record): three 8-byte offsets (prev, next,
	// header), matching spec §8's illustrative sizeof(link) = 24 exactly.
	linkSize = offset(24)

	// headerSize is sizeof(header): size(8) + isFree(4) + magic(4),
	// matching spec §8's illustrative sizeof(header) = 16 exactly.
	headerSize = offset(16)

	// blockMagic is the fixed sentinel every header carries (spec §3).
	blockMagic uint32 = 0x12345678

	// minPayload is the minimum payload size of any block (spec invariant 6).
	minPayload = offset(8)

	// alignment every size and caller pointer must respect (spec invariant 4).
	alignment = offset(8)
)

// linkRecord is the in-band metadata at the start of every block: pointers
// to the previous and next blocks in address order (as offsets), and the
// offset of this block's header.
type linkRecord struct {
	prev   offset
	next   offset
	header offset
}

// blockHeader is the in-band metadata immediately following a link record:
// payload size, free flag, and magic sentinel.
type blockHeader struct {
	size   uint64
	isFree uint32
	magic  uint32
}

func (h *blockHeader) free() bool     { return h.isFree != 0 }
func (h *blockHeader) setFree(v bool) {
	if v {
		h.isFree = 1
	} else {
		h.isFree = 0
	}
}

// linkAt returns a typed view over the link record at the given offset.
// The caller must ensure off is within the region and properly aligned;
// linkAt itself does no bounds checking, mirroring the teacher's
// unsafe.Add-based accessors in unsafex/malloc.
func (a *Allocator) linkAt(off offset) *linkRecord {
	return (*linkRecord)(unsafe.Add(a.region.start, off))
}

// headerAt returns a typed view over the header at the given offset.
func (a *Allocator) headerAt(off offset) *blockHeader {
	return (*blockHeader)(unsafe.Add(a.region.start, off))
}

// header returns the header for the block whose link record is at b.
func (a *Allocator) header(b offset) *blockHeader {
	return a.headerAt(a.linkAt(b).header)
}

// blockEnd returns the offset one past the end of block b's payload, i.e.
// the offset its next sibling would start at if the list were fully tiled.
func (a *Allocator) blockEnd(b offset) offset {
	lr := a.linkAt(b)
	return lr.header + headerSize + offset(a.headerAt(lr.header).size)
}

// payloadSlice returns the caller-visible payload of block b as a slice that
// starts one byte past its header and spans the block's full payload size;
// Alloc hands out a prefix of it.
func (a *Allocator) payloadSlice(b offset) []byte {
	lr := a.linkAt(b)
	hdr := a.headerAt(lr.header)
	ptr := unsafe.Add(a.region.start, lr.header+headerSize)
	return unsafe.Slice((*byte)(ptr), int(hdr.size))
}

// blockFromPayload recovers the link offset of the block that owns the
// given caller-visible slice, by subtracting header and link sizes from the
// slice's data pointer. It only rejects pointers whose derived link offset
// falls outside the region; it does not validate magic, so callers must do
// that before trusting the result (see Free).
func (a *Allocator) blockFromPayload(p []byte) (offset, bool) {
	if len(p) == 0 && cap(p) == 0 {
		return nullOffset, false
	}
	dataPtr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	start := uintptr(a.region.start)
	if dataPtr < start {
		return nullOffset, false
	}
	rel := offset(dataPtr - start)
	headerOff := rel - headerSize
	linkOff := headerOff - linkSize
	if linkOff < 0 || linkOff >= offset(len(a.region.bytes)) {
		return nullOffset, false
	}
	return linkOff, true
}

// alignUp rounds n up to the nearest multiple of alignment (spec §4.3 step 2).
func alignUp(n int) int {
	a := int(alignment)
	return (n + a - 1) &^ (a - 1)
}
