package refgo

// Cast returns a strong handle of a related payload type sharing s's control
// block. conv asserts the pointer relationship, typically a step to or from
// an embedded field; the caller is responsible for its validity, and the
// converted pointer lives exactly as long as the original payload. A nil
// source yields a nil handle and conv is not called.
func Cast[U, T any](s *Shared[T], conv func(*T) *U) Shared[U] {
	if s.cb == nil {
		return Shared[U]{}
	}
	s.cb.state().strong++
	return Shared[U]{cb: s.cb, ptr: conv(s.ptr)}
}

// CastMove is Cast with transfer semantics: s is left nil and no counts
// change.
func CastMove[U, T any](s *Shared[T], conv func(*T) *U) Shared[U] {
	if s.cb == nil {
		return Shared[U]{}
	}
	out := Shared[U]{cb: s.cb, ptr: conv(s.ptr)}
	s.cb, s.ptr = nil, nil
	return out
}

// CastWeak converts a weak handle between related payload types sharing one
// control block; the weak count increments. conv is called with the stored
// pointer even when the handle has expired, mirroring the weak raw-accessor
// contract.
func CastWeak[U, T any](w *Weak[T], conv func(*T) *U) Weak[U] {
	if w.cb == nil {
		return Weak[U]{}
	}
	w.cb.state().weak++
	return Weak[U]{cb: w.cb, ptr: conv(w.ptr)}
}

// CastWeakMove is CastWeak with transfer semantics: w is left nil and no
// counts change.
func CastWeakMove[U, T any](w *Weak[T], conv func(*T) *U) Weak[U] {
	if w.cb == nil {
		return Weak[U]{}
	}
	out := Weak[U]{cb: w.cb, ptr: conv(w.ptr)}
	w.cb, w.ptr = nil, nil
	return out
}
