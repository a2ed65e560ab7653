// Package allocator implements a user-space malloc/free engine that carves
// blocks out of a single contiguous region obtained once from the OS.
//
// An Allocator owns one Region (see region.go) and one doubly-linked,
// address-ordered list of blocks threaded through that region. Blocks are
// never moved; only their size, free flag, and link fields mutate. The
// four fit policies (Best, Worst, First, Next) are pluggable at
// construction time — see fit.go.
//
// Allocator is not safe for concurrent use. Every operation is synchronous
// and runs to completion before the next one begins; callers that need
// concurrent access must serialize calls with their own sync.Mutex.
package allocator

import "fmt"

// Policy selects which fit strategy Alloc uses to choose a free block.
// Numeric values are part of the stable external contract.
type Policy int

const (
	Best Policy = iota
	Worst
	First
	Next
)

func (p Policy) String() string {
	switch p {
	case Best:
		return "best-fit"
	case Worst:
		return "worst-fit"
	case First:
		return "first-fit"
	case Next:
		return "next-fit"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	return p >= Best && p <= Next
}

// Allocator is a single heap over one OS-backed region. The zero value is
// not usable; construct one with NewAllocator.
type Allocator struct {
	region *Region
	policy Policy

	// head is the offset of the lowest-address block's link record, or
	// nullOffset if the allocator has been closed.
	head offset

	// cursor is the Next-fit policy's resume point: the link offset of the
	// last block handed out, or nullOffset if none yet or it was absorbed
	// by a coalesce.
	cursor offset
}

// NewAllocator acquires regionBytes (rounded up to a whole number of OS
// pages, as in spec §4.1) from the OS and constructs a single free block
// spanning it. regionBytes must be positive and policy must be one of
// Best, Worst, First, Next.
func NewAllocator(regionBytes int, policy Policy) (*Allocator, error) {
	if regionBytes <= 0 {
		return nil, fmt.Errorf("%w: region bytes must be > 0, got %d", ErrInvalidArgument, regionBytes)
	}
	if !policy.valid() {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidArgument, int(policy))
	}

	region, err := newRegion(regionBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOSFailure, err)
	}

	a := &Allocator{
		region: region,
		policy: policy,
		cursor: nullOffset,
	}

	total := len(region.bytes)
	root := offset(0)
	lr := a.linkAt(root)
	lr.prev = nullOffset
	lr.next = nullOffset
	lr.header = root + linkSize

	hdr := a.headerAt(lr.header)
	hdr.size = uint64(total - int(linkSize) - int(headerSize))
	hdr.setFree(true)
	hdr.magic = blockMagic

	a.head = root
	return a, nil
}

// Close releases the backing region. It exists for test teardown and
// symmetry with newRegion; spec.md's scope never calls for regions to be
// released mid-process, so production callers typically never invoke it.
func (a *Allocator) Close() error {
	if a.region == nil {
		return nil
	}
	err := a.region.release()
	a.region = nil
	a.head = nullOffset
	a.cursor = nullOffset
	return err
}

// Policy reports the fit policy this allocator was constructed with.
func (a *Allocator) Policy() Policy { return a.policy }

// RegionLen reports the usable byte length of the backing region (after
// OS page rounding), i.e. len(Region.bytes).
func (a *Allocator) RegionLen() int {
	if a.region == nil {
		return 0
	}
	return len(a.region.bytes)
}
