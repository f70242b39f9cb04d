//go:build !windows && !ios && !android && (amd64 || arm64)

package cmem

import (
	"testing"

	"github.com/obinnaokechukwu/refgo"
)

func requireLibc(t *testing.T) bool {
	t.Helper()
	if err := Load(); err != nil {
		t.Skipf("C library unavailable: %v", err)
		return false
	}
	return true
}

func TestNewBufferAndDispose(t *testing.T) {
	if !requireLibc(t) {
		return
	}

	buf, err := NewBuffer(64)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	if buf.Len() != 64 {
		t.Fatalf("Len: got %d want 64", buf.Len())
	}
	if buf.Pointer() == nil {
		t.Fatal("Pointer returned nil for live buffer")
	}

	data := buf.Bytes()
	if len(data) != 64 {
		t.Fatalf("Bytes length: got %d want 64", len(data))
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b)
		}
	}
	data[0] = 0x7F
	if buf.Bytes()[0] != 0x7F {
		t.Fatal("write through Bytes not visible")
	}

	buf.Dispose()
	if buf.Len() != 0 {
		t.Fatalf("Len after Dispose: got %d want 0", buf.Len())
	}
	if buf.Pointer() != nil {
		t.Fatal("Pointer should be nil after Dispose")
	}
	if buf.Bytes() != nil {
		t.Fatal("Bytes should be nil after Dispose")
	}

	// Second Dispose must be a no-op.
	buf.Dispose()
}

func TestNewBufferInvalidSize(t *testing.T) {
	if _, err := NewBuffer(0); err != ErrInvalidSize {
		t.Fatalf("NewBuffer(0): got %v want ErrInvalidSize", err)
	}
	if _, err := NewBuffer(-1); err != ErrInvalidSize {
		t.Fatalf("NewBuffer(-1): got %v want ErrInvalidSize", err)
	}
}

func TestBufferWithSharedHandle(t *testing.T) {
	if !requireLibc(t) {
		return
	}

	buf, err := NewBuffer(128)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}

	s := refgo.New(buf)
	c := s.Clone()

	if got := s.UseCount(); got != 2 {
		t.Fatalf("UseCount: got %d want 2", got)
	}

	s.Release()
	if buf.Len() != 128 {
		t.Fatal("buffer freed while a strong handle remains")
	}

	c.Release()
	if buf.Len() != 0 || buf.Pointer() != nil {
		t.Fatal("buffer not freed after last strong handle release")
	}
}

func TestBufferWithWeakHandle(t *testing.T) {
	if !requireLibc(t) {
		return
	}

	buf, err := NewBuffer(32)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}

	s := refgo.New(buf)
	w := s.Weak()

	if w.Expired() {
		t.Fatal("weak handle expired while strong handle live")
	}

	s.Release()
	if !w.Expired() {
		t.Fatal("weak handle not expired after last strong release")
	}
	if buf.Pointer() != nil {
		t.Fatal("C memory not freed at last strong release")
	}
	w.Release()
}
