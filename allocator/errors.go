package allocator

import "errors"

// Sentinel errors for the five-kind taxonomy in spec §7, plus
// ErrNotInitialized for the package-level API. Wrap with fmt.Errorf and %w
// where extra detail helps, check with errors.Is.
var (
	// ErrInvalidArgument is returned when Init/NewAllocator receives a
	// non-positive region size or an unknown policy value.
	ErrInvalidArgument = errors.New("allocator: invalid argument")

	// ErrAlreadyInitialized is returned by the package-level Init when
	// called a second time without an intervening reset.
	ErrAlreadyInitialized = errors.New("allocator: already initialized")

	// ErrOSFailure wraps a failure acquiring the backing region from the OS.
	ErrOSFailure = errors.New("allocator: os error")

	// ErrInvalidPointer is returned by Free when the block's magic sentinel
	// does not match, indicating a pointer not returned by this allocator
	// or a corrupted header.
	ErrInvalidPointer = errors.New("allocator: invalid pointer")

	// ErrDoubleFree is returned by Free when the block is already marked free.
	ErrDoubleFree = errors.New("allocator: double free")

	// ErrNotInitialized is returned by the package-level Free when called
	// before Init. The package-level Alloc returns nil and Dump writes a
	// notice to os.Stderr in that case instead.
	ErrNotInitialized = errors.New("allocator: not initialized")
)
