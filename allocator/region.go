package allocator

import (
	"os"
	"unsafe"
)

// Region is the single contiguous byte range an Allocator carves blocks
// from. It is obtained once from the OS (mmapRegion, platform-specific —
// see region_unix.go / region_windows.go) and is never grown, shrunk, or
// moved for the lifetime of the Allocator that owns it.
type Region struct {
	bytes []byte
	start unsafe.Pointer
}

// newRegion requests enough whole OS pages to hold at least regionBytes
// plus one link record and one header (spec §4.1: pages = ceil((region_bytes
// + sizeof(link)) / page_size); we additionally reserve the header so a
// region of exactly regionBytes always has room for one block covering it).
func newRegion(regionBytes int) (*Region, error) {
	pageSize := os.Getpagesize()
	need := regionBytes + int(linkSize) + int(headerSize)
	pages := (need + pageSize - 1) / pageSize
	total := pages * pageSize

	buf, err := mmapRegion(total)
	if err != nil {
		return nil, err
	}

	return &Region{
		bytes: buf,
		start: unsafe.Pointer(unsafe.SliceData(buf)),
	}, nil
}

// release returns the region's pages to the OS. See Allocator.Close.
func (r *Region) release() error {
	return munmapRegion(r.bytes)
}
