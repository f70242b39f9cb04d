package refgo

// Shared is an owning handle: the payload stays alive and dereferenceable as
// long as at least one strong handle to it exists. Handles sharing one
// control block must be duplicated with Clone and transferred with Move;
// copying the struct by plain assignment does not adjust counts.
//
// The zero value is a nil handle: Clone, Move, and Release are well-defined
// no-ops on it, every other method requires a live handle.
type Shared[T any] struct {
	cb  controlBlock
	ptr *T
}

// New adopts an externally allocated payload, with the default finalizer and
// allocator. The payload is torn down (Dispose, when implemented) exactly
// when the last strong handle to it is released.
func New[T any](p *T) Shared[T] {
	return NewWith(p, nil, nil)
}

// NewWith adopts p with an explicit finalizer and allocator. A nil finalizer
// means the default (Dispose when the payload implements Disposer); a nil
// allocator means the Go heap. The control block is allocated separately
// from the payload.
//
// If the payload type opts into self-reference (see SelfRef), its embedded
// weak handle is bound from the new strong handle before NewWith returns.
func NewWith[T any](p *T, fin Finalizer[T], alloc Allocator) Shared[T] {
	if fin == nil {
		fin = defaultFinalizer[T]
	}
	b := newRemoteBlock(p, fin, alloc)
	s := Shared[T]{cb: b, ptr: p}
	bindSelf(&s)
	return s
}

// Make moves v into a control block that colocates the payload with its
// counters in a single allocation.
func Make[T any](v T) Shared[T] {
	return Allocate(nil, v)
}

// Allocate is Make with an explicit allocator.
func Allocate[T any](alloc Allocator, v T) Shared[T] {
	b := newEmbedBlock(v, alloc)
	s := Shared[T]{cb: b, ptr: &b.data}
	bindSelf(&s)
	return s
}

// Clone returns a new handle sharing ownership; the strong count increments.
// Cloning a nil handle yields a nil handle.
func (s *Shared[T]) Clone() Shared[T] {
	if s.cb != nil {
		s.cb.state().strong++
	}
	return Shared[T]{cb: s.cb, ptr: s.ptr}
}

// Move transfers ownership out of s, leaving it nil. Counts do not change.
func (s *Shared[T]) Move() Shared[T] {
	out := Shared[T]{cb: s.cb, ptr: s.ptr}
	s.cb, s.ptr = nil, nil
	return out
}

// Release drops this handle's claim and leaves it nil. When the last strong
// handle goes, the payload is finalized exactly once; the control block's
// storage follows once no weak handles remain. Safe on a nil handle.
func (s *Shared[T]) Release() {
	cb := s.cb
	if cb == nil {
		return
	}
	s.cb, s.ptr = nil, nil
	st := cb.state()
	st.strong--
	if st.strong > 0 {
		return
	}
	finalizeBlock(cb)
	st.weak-- // group reference held on behalf of the strong handles
	if st.weak == 0 {
		cb.releaseStorage()
	}
}

// Swap exchanges the contents of two handles. Counts do not change.
func (s *Shared[T]) Swap(o *Shared[T]) {
	s.cb, o.cb = o.cb, s.cb
	s.ptr, o.ptr = o.ptr, s.ptr
}

// Assign replaces s's claim with a copy of o's, releasing the previous one.
// Self-assignment is a no-op.
func (s *Shared[T]) Assign(o *Shared[T]) {
	if s == o {
		return
	}
	tmp := o.Clone()
	s.Swap(&tmp)
	tmp.Release()
}

// AssignMove replaces s's claim with o's, leaving o nil.
func (s *Shared[T]) AssignMove(o *Shared[T]) {
	if s == o {
		return
	}
	tmp := o.Move()
	s.Swap(&tmp)
	tmp.Release()
}

// Reset detaches the handle, as if by assigning a nil handle.
func (s *Shared[T]) Reset() {
	var tmp Shared[T]
	s.Swap(&tmp)
	tmp.Release()
}

// ResetTo replaces the claim with a freshly adopted raw pointer, using the
// default finalizer and allocator.
func (s *Shared[T]) ResetTo(p *T) {
	tmp := New(p)
	s.Swap(&tmp)
	tmp.Release()
}

// ResetToWith is ResetTo with an explicit finalizer and allocator.
func (s *Shared[T]) ResetToWith(p *T, fin Finalizer[T], alloc Allocator) {
	tmp := NewWith(p, fin, alloc)
	s.Swap(&tmp)
	tmp.Release()
}

// Get returns the raw payload pointer. Valid only while the handle is
// non-nil; on a nil handle it returns nil.
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// UseCount returns the number of live strong handles sharing the control
// block. Must not be called on a nil handle.
func (s *Shared[T]) UseCount() int {
	return s.cb.state().strong
}

// IsNil reports whether the handle is detached.
func (s *Shared[T]) IsNil() bool {
	return s.cb == nil
}

// Weak returns an observing handle to the same payload; the weak count
// increments and s keeps its claim.
func (s *Shared[T]) Weak() Weak[T] {
	if s.cb != nil {
		s.cb.state().weak++
	}
	return Weak[T]{cb: s.cb, ptr: s.ptr}
}

// Downgrade demotes this strong handle into a weak one: the weak count gains
// the new observer, the strong count drops, and s becomes nil. When s was
// the last strong handle the payload is finalized before Downgrade returns
// and the result is already expired.
func (s *Shared[T]) Downgrade() Weak[T] {
	w := s.Weak()
	s.Release()
	return w
}
