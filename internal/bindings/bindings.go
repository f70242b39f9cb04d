//go:build !windows && !ios && !android && (amd64 || arm64)

// Package bindings loads the system C library and registers the allocation
// entry points used by cmem via purego.
package bindings

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/refgo/internal/platform"
)

// ErrLibraryNotFound is returned when the system C library cannot be found.
var ErrLibraryNotFound = errors.New("refgo: C library not found")

var (
	libc uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Allocation bindings
var (
	cCalloc func(num, size uintptr) unsafe.Pointer
	cFree   func(ptr unsafe.Pointer)
)

// IsLoaded returns true if the C library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads the C library and registers the allocation bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libc, err = loadLibc()
	if err != nil {
		return fmt.Errorf("loading libc: %w", err)
	}

	purego.RegisterLibFunc(&cCalloc, libc, "calloc")
	purego.RegisterLibFunc(&cFree, libc, "free")
	return nil
}

func loadLibc() (uintptr, error) {
	for _, name := range platform.LibcCandidates() {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
	}
	return 0, fmt.Errorf("%w on %s", ErrLibraryNotFound, platform.GOOS())
}

// Calloc allocates zeroed C memory for num elements of the given size.
// Returns nil if the library is not loaded or the allocation fails.
func Calloc(num, size uintptr) unsafe.Pointer {
	if !loaded || cCalloc == nil {
		return nil
	}
	return cCalloc(num, size)
}

// Free releases C memory obtained from Calloc. Safe on a nil pointer.
func Free(ptr unsafe.Pointer) {
	if !loaded || cFree == nil || ptr == nil {
		return
	}
	cFree(ptr)
}
