//go:build !windows && !ios && !android && (amd64 || arm64)

package bindings

import (
	"testing"
	"unsafe"
)

func requireLibc(t *testing.T) bool {
	t.Helper()
	if err := Load(); err != nil {
		t.Skipf("C library unavailable: %v", err)
		return false
	}
	return true
}

func TestLoadIsIdempotent(t *testing.T) {
	if !requireLibc(t) {
		return
	}
	if err := Load(); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if !IsLoaded() {
		t.Fatal("IsLoaded should report true after successful Load")
	}
}

func TestCallocAndFree(t *testing.T) {
	if !requireLibc(t) {
		return
	}

	p := Calloc(16, 1)
	if p == nil {
		t.Fatal("Calloc returned nil")
	}
	defer Free(p)

	// calloc memory must be zeroed.
	bytes := unsafe.Slice((*byte)(p), 16)
	for i, b := range bytes {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b)
		}
	}

	bytes[0] = 0xAB
	if bytes[0] != 0xAB {
		t.Fatal("C memory not writable")
	}
}

func TestFreeNil(t *testing.T) {
	Free(nil) // must not crash, loaded or not
}
