// Package blocktrack keeps a registry of live control blocks so leaks and
// premature releases are observable from tests and diagnostics.
//
// Handle and counter mutation in the root package is single-threaded by
// contract, but independent blocks may be created from different goroutines,
// so the registry itself is guarded.
package blocktrack

import (
	"sync"
)

var (
	mu     sync.RWMutex
	blocks = make(map[uint64]uintptr)
	bytes  int64
	nextID uint64 = 1
)

// Register records a live control block with its footprint and returns its
// id. Ids are unique for the life of the process.
func Register(footprint uintptr) uint64 {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	blocks[id] = footprint
	bytes += int64(footprint)
	return id
}

// Unregister removes a block from the registry. Unknown ids are ignored.
func Unregister(id uint64) {
	mu.Lock()
	defer mu.Unlock()
	fp, ok := blocks[id]
	if !ok {
		return
	}
	delete(blocks, id)
	bytes -= int64(fp)
}

// Count returns the number of currently live blocks.
// Useful for leak checks.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(blocks)
}

// Bytes returns the total footprint of currently live blocks.
func Bytes() int64 {
	mu.RLock()
	defer mu.RUnlock()
	return bytes
}
