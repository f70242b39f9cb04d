package refgo

import "errors"

// Common errors
var (
	// ErrOutOfMemory indicates the allocator refused storage for a control
	// block. Constructing operations panic with this value; no partial block
	// is left behind.
	ErrOutOfMemory = errors.New("refgo: out of memory")

	// ErrPoolClosed indicates the pool has been closed.
	ErrPoolClosed = errors.New("refgo: pool is closed")

	// ErrPoolExhausted indicates the pool's in-use limit has been reached.
	ErrPoolExhausted = errors.New("refgo: pool exhausted")
)
