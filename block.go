package refgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/refgo/internal/blocktrack"
)

// controlBlock is the metadata object shared by every strong and weak handle
// descending from one construction call. Exactly two variants implement it:
// remoteBlock for payloads allocated independently of their metadata, and
// embedBlock for payloads colocated with it.
//
// The handle destructors drive the one-shot protocol: runFinalizer then
// destroyPayload when the strong count hits zero, releaseStorage when the
// weak count hits zero. Both teardown steps are defined on both variants
// (one of them is a no-op) so the call sites never branch on variant.
type controlBlock interface {
	state() *blockState
	runFinalizer()
	destroyPayload()
	releaseStorage()
}

// blockState is the counter and bookkeeping state embedded in both variants.
//
// weak counts live weak handles plus one group reference held on behalf of
// all strong handles while strong > 0. Storage is released exactly when weak
// reaches zero, which makes the release a single transition even when a
// payload's own embedded self-reference is the last weak handle to die
// during finalization.
type blockState struct {
	strong    int
	weak      int
	alloc     Allocator
	footprint uintptr
	id        uint64
}

// init reserves storage for a block of the given concrete footprint and
// starts the counters at one strong handle. Panics with ErrOutOfMemory when
// the allocator refuses; no block is registered in that case.
func (st *blockState) init(alloc Allocator, footprint uintptr) {
	if alloc == nil {
		alloc = GoAllocator{}
	}
	if !alloc.Reserve(footprint) {
		panic(ErrOutOfMemory)
	}
	st.strong = 1
	st.weak = 1
	st.alloc = alloc
	st.footprint = footprint
	st.id = blocktrack.Register(footprint)
	emitTrace(EventAllocate, st.id)
}

// releaseStorage retires the block's backing storage. Called exactly once,
// with the footprint of the concrete variant captured at init.
func (st *blockState) releaseStorage() {
	st.alloc.Release(st.footprint)
	blocktrack.Unregister(st.id)
	emitTrace(EventRelease, st.id)
}

// finalizeBlock runs the fixed teardown sequence when the last strong handle
// goes: external resource release first, in-place payload destruction second.
func finalizeBlock(cb controlBlock) {
	cb.runFinalizer()
	cb.destroyPayload()
	emitTrace(EventFinalize, cb.state().id)
}

// remoteBlock points at an independently allocated payload. The finalizer
// owns payload teardown, so destroyPayload has nothing left to do.
type remoteBlock[T any] struct {
	blockState
	ptr *T
	fin Finalizer[T]
}

func newRemoteBlock[T any](p *T, fin Finalizer[T], alloc Allocator) *remoteBlock[T] {
	b := &remoteBlock[T]{ptr: p, fin: fin}
	b.init(alloc, unsafe.Sizeof(*b))
	return b
}

func (b *remoteBlock[T]) state() *blockState { return &b.blockState }

func (b *remoteBlock[T]) runFinalizer() {
	b.fin(b.ptr)
	if b.ptr == nil {
		return
	}
	if h, ok := any(b.ptr).(selfHolder); ok {
		h.releaseSelf()
	}
}

func (b *remoteBlock[T]) destroyPayload() {}

// embedBlock colocates the payload value with the counters in a single
// allocation. There is no external resource, so runFinalizer is a no-op.
type embedBlock[T any] struct {
	blockState
	data T
}

func newEmbedBlock[T any](v T, alloc Allocator) *embedBlock[T] {
	b := &embedBlock[T]{data: v}
	b.init(alloc, unsafe.Sizeof(*b))
	return b
}

func (b *embedBlock[T]) state() *blockState { return &b.blockState }

func (b *embedBlock[T]) runFinalizer() {}

// destroyPayload tears the embedded value down in place. The value is zeroed
// afterwards so an expired weak handle can never observe live payload state.
func (b *embedBlock[T]) destroyPayload() {
	if d, ok := any(&b.data).(Disposer); ok {
		d.Dispose()
	}
	if h, ok := any(&b.data).(selfHolder); ok {
		h.releaseSelf()
	}
	var zero T
	b.data = zero
}

// Finalizer releases an externally allocated payload when the last strong
// handle referencing it is gone.
type Finalizer[T any] func(*T)

// Disposer is the payload teardown capability. The default finalizer invokes
// Dispose on adopted payloads that implement it, and colocated payloads that
// implement it are disposed in place when the last strong handle goes.
type Disposer interface {
	Dispose()
}

func defaultFinalizer[T any](p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
}
