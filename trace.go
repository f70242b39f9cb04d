package refgo

import "sync"

// Event identifies a control block lifecycle transition.
type Event int32

// Lifecycle events, in the order a block goes through them.
const (
	// EventAllocate fires when a control block is created.
	EventAllocate Event = iota

	// EventFinalize fires when the payload has been finalized, immediately
	// after the last strong handle is gone.
	EventFinalize

	// EventRelease fires when the control block's storage is released, after
	// both counts have reached zero.
	EventRelease
)

// String returns the string representation of the event.
func (e Event) String() string {
	switch e {
	case EventAllocate:
		return "allocate"
	case EventFinalize:
		return "finalize"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// TraceCallback is called for each lifecycle event. id identifies the
// control block; ids are unique for the life of the process.
type TraceCallback func(event Event, id uint64)

var (
	traceMu sync.Mutex
	traceCB TraceCallback
)

// SetTraceCallback installs a lifecycle tracing hook. Pass nil to disable
// tracing. The callback runs on the goroutine driving the handle operation
// and must not create or release handles itself.
func SetTraceCallback(cb TraceCallback) {
	traceMu.Lock()
	traceCB = cb
	traceMu.Unlock()
}

func emitTrace(e Event, id uint64) {
	traceMu.Lock()
	cb := traceCB
	traceMu.Unlock()

	if cb == nil {
		return
	}
	cb(e, id)
}
