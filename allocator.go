package refgo

import "go.uber.org/atomic"

// Allocator controls admission and accounting for control block backing
// storage. The Go runtime owns the memory itself, so an Allocator does not
// hand out raw bytes; it decides whether a block of the given footprint may
// be created and is told exactly once when that footprint is retired. The
// footprint passed to both calls is the size of the concrete block variant,
// payload included for colocated blocks.
type Allocator interface {
	// Reserve accounts for a control block about to be created. It reports
	// whether the storage may be obtained; a false return makes the
	// constructing operation fail with ErrOutOfMemory and leaves no partial
	// block behind.
	Reserve(footprint uintptr) bool

	// Release returns the footprint of a retired block. Called exactly once
	// per successful Reserve.
	Release(footprint uintptr)
}

// GoAllocator is the default allocator: the Go heap, no admission policy.
type GoAllocator struct{}

func (GoAllocator) Reserve(uintptr) bool { return true }

func (GoAllocator) Release(uintptr) {}

// LimitAllocator bounds the number of live control blocks and their total
// footprint. A limit <= 0 disables that bound.
type LimitAllocator struct {
	maxBlocks int64
	maxBytes  int64
	blocks    atomic.Int64
	bytes     atomic.Int64
}

// NewLimitAllocator creates an allocator enforcing the given bounds.
func NewLimitAllocator(maxBlocks, maxBytes int64) *LimitAllocator {
	return &LimitAllocator{maxBlocks: maxBlocks, maxBytes: maxBytes}
}

func (a *LimitAllocator) Reserve(footprint uintptr) bool {
	blocks := a.blocks.Add(1)
	bytes := a.bytes.Add(int64(footprint))
	if (a.maxBlocks > 0 && blocks > a.maxBlocks) || (a.maxBytes > 0 && bytes > a.maxBytes) {
		a.blocks.Dec()
		a.bytes.Sub(int64(footprint))
		return false
	}
	return true
}

func (a *LimitAllocator) Release(footprint uintptr) {
	a.blocks.Dec()
	a.bytes.Sub(int64(footprint))
}

// InUse returns the blocks and bytes currently reserved through this
// allocator.
func (a *LimitAllocator) InUse() (blocks, bytes int64) {
	return a.blocks.Load(), a.bytes.Load()
}
