//go:build windows

package allocator

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmapRegion acquires size bytes of anonymous, readable, writable memory
// from the OS on Windows, via VirtualAlloc — the Windows analogue of the
// POSIX mmap call the unix build uses (region_unix.go).
func mmapRegion(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// munmapRegion releases pages acquired by mmapRegion.
func munmapRegion(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
