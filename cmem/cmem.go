//go:build !windows && !ios && !android && (amd64 || arm64)

// Package cmem allocates payload storage on the C heap through the system C
// library, without CGO. It exists for the memory manual reference counting
// is for: allocations the Go collector does not manage and will never free.
//
// A Buffer is the canonical refgo payload. Adopt one with refgo.New and the
// default finalizer frees the C memory the instant the last strong handle is
// released:
//
//	buf, err := cmem.NewBuffer(4096)
//	if err != nil { ... }
//	s := refgo.New(buf)
//	defer s.Release() // frees the C allocation
package cmem

import (
	"errors"
	"unsafe"

	"github.com/obinnaokechukwu/refgo/internal/bindings"
)

// ErrOutOfMemory indicates the C allocator returned no memory.
var ErrOutOfMemory = errors.New("cmem: out of memory")

// ErrInvalidSize indicates a non-positive allocation size.
var ErrInvalidSize = errors.New("cmem: size must be positive")

// Load loads the system C library. It is called automatically by NewBuffer,
// but can be called explicitly to check for errors. It is safe to call
// multiple times.
func Load() error {
	return bindings.Load()
}

// IsLoaded returns true if the C library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Buffer is a zero-initialized allocation on the C heap.
type Buffer struct {
	ptr  unsafe.Pointer
	size int
}

// NewBuffer allocates size bytes of zeroed C memory.
func NewBuffer(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if err := bindings.Load(); err != nil {
		return nil, err
	}
	p := bindings.Calloc(uintptr(size), 1)
	if p == nil {
		return nil, ErrOutOfMemory
	}
	return &Buffer{ptr: p, size: size}, nil
}

// Bytes returns the buffer contents as a slice backed by C memory.
// The slice is valid only until Dispose.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.size)
}

// Len returns the allocation size in bytes, or 0 after Dispose.
func (b *Buffer) Len() int {
	if b == nil || b.ptr == nil {
		return 0
	}
	return b.size
}

// Pointer returns the raw C pointer, or nil after Dispose.
func (b *Buffer) Pointer() unsafe.Pointer {
	if b == nil {
		return nil
	}
	return b.ptr
}

// Dispose frees the C memory. Safe to call more than once. refgo's default
// finalizer calls it when the last strong handle to the buffer is released.
func (b *Buffer) Dispose() {
	if b == nil || b.ptr == nil {
		return
	}
	bindings.Free(b.ptr)
	b.ptr = nil
	b.size = 0
}
