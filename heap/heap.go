// Package heap wraps a single global tlsf.Pool the way
// original_source/tlsf.c's HeapInit/uMalloc/uFree/uGetAvailable wrap
// theirs: a convenience surface for callers that only ever need one
// pool and don't want to thread a *tlsf.Pool through their own code.
//
// Like the core tlsf package, heap guards nothing internally — callers
// sharing one heap across goroutines must serialize their own access.
package heap

import (
	"fmt"
	"unsafe"

	"github.com/go-tlsf/tlsf"
)

// requestCap is the largest size Malloc will actually request from
// the pool; anything above it is served as a requestFloor-byte block
// instead, mirroring uMalloc's "if(size > 16384) size = 16000" clamp.
const (
	requestCap   = 16384
	requestFloor = 16000
)

var pool *tlsf.Pool

// Init lays down a pool over region, as the single global heap. A
// second Init on the same already-initialized region is a benign
// reopen, same as tlsf.Init.
func Init(region []byte) error {
	p, _, err := tlsf.Init(region)
	if err != nil {
		return fmt.Errorf("heap: init: %w", err)
	}
	pool = p
	return nil
}

// Malloc allocates size bytes from the global heap, clamping oversized
// requests the way uMalloc does. Returns nil if the heap was never
// initialized or is out of memory.
func Malloc(size int64) unsafe.Pointer {
	if pool == nil {
		return nil
	}
	if size > requestCap {
		size = requestFloor
	}

	ptr, err := pool.Allocate(size)
	if err != nil {
		return nil
	}
	return ptr
}

// Free returns ptr to the global heap. A nil ptr is a no-op.
func Free(ptr unsafe.Pointer) {
	if pool == nil {
		return
	}
	pool.Free(ptr)
}

// Available reports the heap's remaining capacity: the peak used size
// minus the current used size, same accounting as uGetAvailable.
func Available() int64 {
	if pool == nil {
		return 0
	}
	return pool.MaxSize() - pool.UsedSize()
}
