//go:build unix

package allocator

import "golang.org/x/sys/unix"

// mmapRegion acquires size bytes of anonymous, readable, writable memory
// from the OS, as spec §4.1 requires of init. Grounded on the same
// golang.org/x/sys dependency SeleniaProject-Orizon pulls in for its
// runtime's OS-facing layer; unix.Mmap is the direct equivalent of the
// original umem.c's mmap(NULL, region_size, PROT_READ|PROT_WRITE,
// MAP_ANON|MAP_PRIVATE, -1, 0) call.
func mmapRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// munmapRegion releases pages acquired by mmapRegion.
func munmapRegion(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
