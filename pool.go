package refgo

import "sync"

// Pool reuses payload allocations across handle lifetimes. Get hands out a
// strong handle whose finalizer returns the payload to the pool when the
// last strong handle is released, so pooled objects carry the usual
// Shared/Weak semantics while they are out.
//
// Pool itself is safe for concurrent Get/Close; the handles it returns
// follow the package's handle contract.
type Pool[T any] struct {
	mu       sync.Mutex
	idle     []*T
	closed   bool
	inUse    int
	maxInUse int
	reset    func(*T)
}

// NewPool creates a new pool. If maxInUse <= 0, the pool is unbounded.
// reset, if non-nil, is applied to each payload before it is handed out.
func NewPool[T any](maxInUse int, reset func(*T)) *Pool[T] {
	return &Pool[T]{maxInUse: maxInUse, reset: reset}
}

// Get returns a strong handle to a pooled payload.
func (p *Pool[T]) Get() (Shared[T], error) {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()
		return Shared[T]{}, ErrPoolClosed
	}
	if p.maxInUse > 0 && p.inUse >= p.maxInUse {
		p.mu.Unlock()
		return Shared[T]{}, ErrPoolExhausted
	}

	var v *T
	if n := len(p.idle); n > 0 {
		v = p.idle[n-1]
		p.idle = p.idle[:n-1]
	} else {
		v = new(T)
	}
	p.inUse++
	p.mu.Unlock()

	if p.reset != nil {
		p.reset(v)
	}
	return NewWith(v, p.put, nil), nil
}

// put is the finalizer attached to every handle from Get.
func (p *Pool[T]) put(v *T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inUse--
	if p.closed {
		// Pool is closed: drop the payload.
		return
	}
	p.idle = append(p.idle, v)
}

// Close discards idle payloads and rejects further Get calls. Payloads still
// out are dropped when their last handle is released.
func (p *Pool[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.idle = nil
	return nil
}

// InUse returns the number of payloads currently handed out.
func (p *Pool[T]) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}
