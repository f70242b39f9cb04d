package refgo

// SelfRef lets a payload obtain a strong handle to itself. A payload opts in
// by embedding SelfRef of its own type:
//
//	type Node struct {
//		refgo.SelfRef[Node]
//		// ...
//	}
//
// Every construction path that creates a new control block binds the
// embedded weak handle as its final step. Before the first strong handle to
// the payload exists, Self returns a nil handle.
//
// A payload value must not be copied after it has been bound: the embedded
// weak handle does not survive plain struct assignment.
type SelfRef[T any] struct {
	self Weak[T]
}

// Self returns a strong handle to the payload, sharing the control block of
// the handles that already own it. Nil if no strong handle to the payload
// has ever existed, or if the payload has already been finalized.
func (r *SelfRef[T]) Self() Shared[T] {
	return r.self.Lock()
}

// selfBinder is the capability checked after control block creation.
type selfBinder[T any] interface {
	bindSelf(*Shared[T])
}

// selfHolder lets a control block release the embedded weak handle during
// payload teardown without knowing the payload type.
type selfHolder interface {
	releaseSelf()
}

func (r *SelfRef[T]) bindSelf(s *Shared[T]) {
	r.self.Release()
	r.self = s.Weak()
}

func (r *SelfRef[T]) releaseSelf() {
	r.self.Release()
}

// bindSelf populates the payload's embedded self-reference when the payload
// type opts in. Called by every construction path that allocates a new
// control block, right after the block is fully initialized.
func bindSelf[T any](s *Shared[T]) {
	if s.ptr == nil {
		return
	}
	if b, ok := any(s.ptr).(selfBinder[T]); ok {
		b.bindSelf(s)
	}
}
