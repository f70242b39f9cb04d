package refgo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolGetReleaseAndLimit(t *testing.T) {
	p := NewPool[int](1, nil)
	defer p.Close()

	h, err := p.Get()
	require.NoError(t, err)
	require.Equal(t, 1, p.InUse())

	_, err = p.Get()
	require.ErrorIs(t, err, ErrPoolExhausted)

	h.Release()
	require.Equal(t, 0, p.InUse())

	h2, err := p.Get()
	require.NoError(t, err)
	h2.Release()
}

func TestPoolReusesPayloads(t *testing.T) {
	p := NewPool[int](0, func(v *int) { *v = 0 })
	defer p.Close()

	h, err := p.Get()
	require.NoError(t, err)
	first := h.Get()
	*first = 42
	h.Release()

	h2, err := p.Get()
	require.NoError(t, err)
	require.Same(t, first, h2.Get(), "released payload should be reused")
	require.Equal(t, 0, *h2.Get(), "reset must run before reuse")
	h2.Release()
}

func TestPoolPayloadHeldByClones(t *testing.T) {
	p := NewPool[int](0, nil)
	defer p.Close()

	h, err := p.Get()
	require.NoError(t, err)

	c := h.Clone()
	h.Release()
	require.Equal(t, 1, p.InUse(), "payload stays out while any strong handle lives")

	c.Release()
	require.Equal(t, 0, p.InUse())
}

func TestPoolClose(t *testing.T) {
	p := NewPool[int](0, nil)

	h, err := p.Get()
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close()) // idempotent

	_, err = p.Get()
	require.ErrorIs(t, err, ErrPoolClosed)

	// Outstanding payloads are dropped, not pooled.
	h.Release()
	require.Equal(t, 0, p.InUse())
}

func TestPoolHandlesCarryWeakSemantics(t *testing.T) {
	p := NewPool[int](0, nil)
	defer p.Close()

	h, err := p.Get()
	require.NoError(t, err)

	w := h.Weak()
	require.False(t, w.Expired())

	h.Release()
	require.True(t, w.Expired(), "returning to the pool finalizes the handle's claim")
	w.Release()
}
