//go:build !windows && !ios && !android && (amd64 || arm64)

package platform

import "testing"

func TestLibcCandidates(t *testing.T) {
	candidates := LibcCandidates()
	if len(candidates) == 0 {
		t.Fatal("expected at least one libc candidate")
	}
	for _, c := range candidates {
		if c == "" {
			t.Error("empty libc candidate")
		}
	}
}

func TestIs64Bit(t *testing.T) {
	// The build tags restrict us to amd64/arm64.
	if !Is64Bit {
		t.Error("expected 64-bit platform under current build constraints")
	}
}
