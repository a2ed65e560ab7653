package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// auditInvariants walks the block list once and checks the six
// universally-quantified invariants from spec §3/§8. The scenario tests call
// it after their allocation and release steps, mirroring the
// teacher's habit of asserting heap-shape properties inline
// (TestBuddyAllocatorWithCustomBlockSize in buddy_test.go).
func auditInvariants(t *testing.T, a *Allocator) {
	t.Helper()

	var total offset
	prevFree := false
	prevOff := nullOffset

	for b := a.head; b != nullOffset; {
		lr := a.linkAt(b)
		hdr := a.header(b)

		require.Equal(t, prevOff, lr.prev, "link.prev mismatch at offset %d", b)
		if lr.next != nullOffset {
			require.Less(t, int64(b), int64(lr.next), "address order violated at offset %d", b)
			require.Equal(t, lr.next, a.blockEnd(b), "tiling violated at offset %d", b)
		}
		require.False(t, prevFree && hdr.free(), "adjacent free blocks at offset %d", b)
		require.Zero(t, hdr.size%8, "size not 8-aligned at offset %d", b)
		require.Equal(t, blockMagic, hdr.magic, "magic mismatch at offset %d", b)

		total += linkSize + headerSize + offset(hdr.size)
		prevFree = hdr.free()
		prevOff = b
		b = lr.next
	}

	require.EqualValues(t, a.RegionLen(), total, "blocks do not tile the region exactly")
}

func newTestAllocator(t *testing.T, regionBytes int, policy Policy) *Allocator {
	t.Helper()
	a, err := NewAllocator(regionBytes, policy)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}
