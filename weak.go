package refgo

// Weak is a non-owning handle: it observes a payload without keeping it
// alive and can detect its demise. Raw access through Get is only meaningful
// while Expired reports false; use Lock to obtain an owning handle first.
//
// The zero value is a nil handle, which is permanently expired.
type Weak[T any] struct {
	cb  controlBlock
	ptr *T
}

// Clone returns a new observer of the same payload; the weak count
// increments. Cloning a nil handle yields a nil handle.
func (w *Weak[T]) Clone() Weak[T] {
	if w.cb != nil {
		w.cb.state().weak++
	}
	return Weak[T]{cb: w.cb, ptr: w.ptr}
}

// Move transfers the observation out of w, leaving it nil. Counts do not
// change.
func (w *Weak[T]) Move() Weak[T] {
	out := Weak[T]{cb: w.cb, ptr: w.ptr}
	w.cb, w.ptr = nil, nil
	return out
}

// Release drops this observer and leaves the handle nil. When both counts
// are gone the control block's storage is released. Safe on a nil handle.
func (w *Weak[T]) Release() {
	cb := w.cb
	if cb == nil {
		return
	}
	w.cb, w.ptr = nil, nil
	st := cb.state()
	st.weak--
	if st.weak == 0 {
		cb.releaseStorage()
	}
}

// Swap exchanges the contents of two handles. Counts do not change.
func (w *Weak[T]) Swap(o *Weak[T]) {
	w.cb, o.cb = o.cb, w.cb
	w.ptr, o.ptr = o.ptr, w.ptr
}

// Assign replaces w with a copy of o, releasing the previous observation.
// Self-assignment is a no-op.
func (w *Weak[T]) Assign(o *Weak[T]) {
	if w == o {
		return
	}
	tmp := o.Clone()
	w.Swap(&tmp)
	tmp.Release()
}

// AssignMove replaces w with o's contents, leaving o nil.
func (w *Weak[T]) AssignMove(o *Weak[T]) {
	if w == o {
		return
	}
	tmp := o.Move()
	w.Swap(&tmp)
	tmp.Release()
}

// Expired reports whether the payload is gone: there is no control block, or
// no strong handles remain.
func (w *Weak[T]) Expired() bool {
	return w.cb == nil || w.cb.state().strong == 0
}

// Lock returns an owning handle to the payload, or a nil handle when w has
// expired. A non-nil result increments the strong count and is valid until
// released, independent of w.
func (w *Weak[T]) Lock() Shared[T] {
	if w.Expired() {
		return Shared[T]{}
	}
	w.cb.state().strong++
	return Shared[T]{cb: w.cb, ptr: w.ptr}
}

// Get returns the raw payload pointer. Only meaningful while Expired reports
// false.
func (w *Weak[T]) Get() *T {
	return w.ptr
}

// UseCount returns the number of live strong handles to the observed
// payload. Must not be called on a nil handle.
func (w *Weak[T]) UseCount() int {
	return w.cb.state().strong
}

// IsNil reports whether the handle is detached.
func (w *Weak[T]) IsNil() bool {
	return w.cb == nil
}
