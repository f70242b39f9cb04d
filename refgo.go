// Package refgo provides manual reference-counted handles over heap values:
// a strong owning handle (Shared) that keeps its payload alive, a weak
// observing handle (Weak) that can detect the payload's demise, and a mixin
// (SelfRef) that lets a payload obtain a strong handle to itself.
//
// The handles exist for payloads whose teardown must happen at a known
// instant rather than whenever the collector gets around to it: C-heap
// buffers (see the cmem package), pooled objects (see Pool), descriptors
// that must close deterministically.
//
// Handles are duplicated with Clone, transferred with Move, and returned
// with Release; plain struct assignment does not adjust counts. Counters are
// plain integers: mutating handles that share one control block from
// multiple goroutines requires external synchronization.
package refgo

import "github.com/obinnaokechukwu/refgo/internal/blocktrack"

// MemoryUsage reports control block storage currently live.
type MemoryUsage struct {
	LiveBlocks int
	LiveBytes  int64
}

// Usage returns the number of live control blocks and their total footprint.
// Useful for leak checks in tests.
func Usage() MemoryUsage {
	return MemoryUsage{
		LiveBlocks: blocktrack.Count(),
		LiveBytes:  blocktrack.Bytes(),
	}
}
