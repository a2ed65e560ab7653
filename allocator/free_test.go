package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitAndCoalesce covers spec §8 seed scenario 3.
func TestSplitAndCoalesce(t *testing.T) {
	a := newTestAllocator(t, 4096, First)

	pa := a.Alloc(100)
	pb := a.Alloc(200)
	pc := a.Alloc(300)
	require.NotNil(t, pa)
	require.NotNil(t, pb)
	require.NotNil(t, pc)
	auditInvariants(t, a)

	require.NoError(t, a.Free(pa))
	require.NoError(t, a.Free(pc))
	require.NoError(t, a.Free(pb))
	auditInvariants(t, a)

	assertSingleFreeBlockSpansRegion(t, a)
}

// TestFullReleaseRoundTrip covers the full-release round-trip law (spec §8):
// after freeing every outstanding allocation, the list contains exactly one
// block sized region_len - sizeof(link) - sizeof(header).
func TestFullReleaseRoundTrip(t *testing.T) {
	a := newTestAllocator(t, 8192, Best)

	var ptrs [][]byte
	for _, n := range []int{40, 80, 120, 33, 500, 17} {
		p := a.Alloc(n)
		require.NotNil(t, p)
		ptrs = append(ptrs, p)
	}
	auditInvariants(t, a)

	for _, p := range ptrs {
		require.NoError(t, a.Free(p))
	}
	auditInvariants(t, a)
	assertSingleFreeBlockSpansRegion(t, a)
}

func assertSingleFreeBlockSpansRegion(t *testing.T, a *Allocator) {
	t.Helper()
	lr := a.linkAt(a.head)
	assert.Equal(t, nullOffset, lr.next, "expected exactly one block after full release")
	hdr := a.header(a.head)
	assert.True(t, hdr.free())
	assert.EqualValues(t, a.RegionLen()-int(linkSize)-int(headerSize), hdr.size)
}

func TestFreeNull(t *testing.T) {
	a := newTestAllocator(t, 4096, First)
	assert.NoError(t, a.Free(nil))
	assert.NoError(t, a.Free([]byte{}))
	auditInvariants(t, a)
}

func TestFreeInvalidPointer(t *testing.T) {
	a := newTestAllocator(t, 4096, First)
	p := a.Alloc(64)
	require.NotNil(t, p)

	b, ok := a.blockFromPayload(p)
	require.True(t, ok)
	a.header(b).magic = 0xDEADBEEF

	assert.ErrorIs(t, a.Free(p), ErrInvalidPointer)
}

func TestFreeDoubleFree(t *testing.T) {
	a := newTestAllocator(t, 4096, First)
	p := a.Alloc(64)
	require.NotNil(t, p)

	require.NoError(t, a.Free(p))
	assert.ErrorIs(t, a.Free(p), ErrDoubleFree)
	auditInvariants(t, a)
}

func TestFreeDoubleFreeDoesNotMutate(t *testing.T) {
	a := newTestAllocator(t, 4096, First)
	p := a.Alloc(64)
	require.NoError(t, a.Free(p))

	b, ok := a.blockFromPayload(p)
	require.True(t, ok)
	before := *a.header(b)

	assert.ErrorIs(t, a.Free(p), ErrDoubleFree)
	assert.Equal(t, before, *a.header(b))
}

// TestCoalesceResetsNextFitCursor covers the cursor-reset requirement spec
// §9 adds on top of the original source (§4.4 step 4/5): if the next-fit
// cursor names a block absorbed by a coalesce, it must reset to nullOffset.
func TestCoalesceResetsNextFitCursor(t *testing.T) {
	a := newTestAllocator(t, 8192, Next)

	p1 := a.Alloc(100)
	p2 := a.Alloc(100)
	require.NotNil(t, p1)
	require.NotNil(t, p2)

	// Next-fit's cursor now names p2's block, the last one handed out.
	b2, ok := a.blockFromPayload(p2)
	require.True(t, ok)
	require.Equal(t, b2, a.cursor)

	// Freeing p1 then p2 makes p1's now-free block absorb p2's block on the
	// right (mergeLeft from p2's perspective): p2's block is retired.
	require.NoError(t, a.Free(p1))
	require.NoError(t, a.Free(p2))
	assert.Equal(t, nullOffset, a.cursor, "cursor should reset once its block is absorbed by a coalesce")
	auditInvariants(t, a)
}
