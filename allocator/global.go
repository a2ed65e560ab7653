package allocator

import (
	"fmt"
	"os"
)

// instance is the process-wide allocator backing the package-level
// Init/Alloc/Free/Dump functions — the "single global instance guarded by a
// one-shot initializer" design note §9 offers as an alternative to passing
// an *Allocator explicitly. Like the Allocator type itself, none of this is
// safe for concurrent use (spec §5).
var instance *Allocator

// Init constructs the process-wide allocator over a region of the given
// size with the given policy. It fails with ErrAlreadyInitialized if called
// twice without an intervening reset, and otherwise behaves exactly as
// NewAllocator (spec §4.1, §6).
func Init(regionBytes int, policy Policy) error {
	if instance != nil {
		return ErrAlreadyInitialized
	}
	a, err := NewAllocator(regionBytes, policy)
	if err != nil {
		return err
	}
	instance = a
	return nil
}

// Alloc serves n bytes from the process-wide allocator. It returns nil if
// Init has not been called, mirroring the null-pointer contract Alloc uses
// for every other failure mode (spec §6).
func Alloc(n int) []byte {
	if instance == nil {
		return nil
	}
	return instance.Alloc(n)
}

// Free returns block to the process-wide allocator.
func Free(block []byte) error {
	if instance == nil {
		return ErrNotInitialized
	}
	return instance.Free(block)
}

// Dump writes the process-wide allocator's free-block report to os.Stderr,
// matching spec §6's "diagnostic messages may be written to a standard
// error stream." Use (*Allocator).Dump directly to target another writer.
func Dump() {
	if instance == nil {
		fmt.Fprintln(os.Stderr, "allocator: not initialized")
		return
	}
	instance.Dump(os.Stderr)
}

// reset tears down the process-wide allocator so a test can call Init
// again. Unexported: production callers never get an intervening teardown,
// matching spec §4.1's "already-initialized" contract exactly; only tests
// in this package need to construct more than one process-wide instance.
func reset() {
	if instance != nil {
		instance.Close()
	}
	instance = nil
}
