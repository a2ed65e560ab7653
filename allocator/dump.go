package allocator

import (
	"fmt"
	"io"

	"github.com/bytedance/gopkg/lang/mcache"
)

// Dump performs a read-only traversal of the block list and writes one line
// per free block to w, in the format spec §4.5/§6 mandates:
//
//	Free block: Address=<hex>, Size=<dec>, Is_Free=1
//
// It does not mutate allocator state and is safe to call at any consistent
// point between operations. The scratch buffer used to format each line is
// pooled via mcache, following the scratch-buffer idiom in
// cloudwego-gopkg/bufiox/defaultbuf.go, so repeated dumps of a long list
// don't allocate a fresh Go buffer per block.
func (a *Allocator) Dump(w io.Writer) {
	buf := mcache.Malloc(0, 128)
	defer mcache.Free(buf)

	for b := a.head; b != nullOffset; b = a.linkAt(b).next {
		hdr := a.header(b)
		if !hdr.free() {
			continue
		}
		addr := uintptr(a.region.start) + uintptr(b)
		buf = appendDumpLine(buf[:0], addr, hdr.size)
		w.Write(buf)
	}
}

func appendDumpLine(buf []byte, addr uintptr, size uint64) []byte {
	return fmt.Appendf(buf, "Free block: Address=%#x, Size=%d, Is_Free=1\n", addr, size)
}
