//go:build !windows && !ios && !android && (amd64 || arm64)

// Package platform provides platform detection for the cmem package. It
// determines where the system C library lives on the current operating
// system.
package platform

import (
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// cmem only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibcCandidates returns the C library names to try, most specific first.
// Bare sonames are resolved through the system's default search path.
func LibcCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		// dlopen requires the full path on modern macOS.
		return []string{"/usr/lib/libSystem.B.dylib"}
	case "freebsd":
		return []string{"libc.so.7", "libc.so"}
	default: // linux
		return []string{"libc.so.6", "libc.so"}
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}
