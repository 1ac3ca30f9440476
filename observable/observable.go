// Package observable provides a minimal publish/subscribe primitive.
//
// A Notifier holds an ordered set of listeners and invokes all of them,
// synchronously and in subscription order, on every NotifyAll call. It has
// no dependency on any presentation framework; anything that needs to react
// to state changes registers a plain callback.
package observable

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/rise-and-shine/reactive/logger"
)

// Listener is a callback invoked on every notification. It receives no
// payload; observers are expected to re-read state from whatever owns the
// Notifier.
type Listener func()

// Subscription is the handle returned by Subscribe, used to remove exactly
// that registration. The zero value is valid and refers to nothing.
type Subscription struct {
	id uuid.UUID
}

type entry struct {
	id       uuid.UUID
	listener Listener
}

// Notifier is an ordered listener registry. It is safe for concurrent use.
//
// The same listener may be subscribed multiple times; each call to Subscribe
// is a distinct registration with its own handle. Mutations made while a
// notification pass is in progress never affect that pass: NotifyAll works
// on a snapshot taken at its start, so a listener added or removed from
// inside a listener takes effect from the next NotifyAll on.
type Notifier struct {
	logger logger.Logger

	mu      sync.Mutex
	entries []entry
}

// NewNotifier creates a Notifier with zero listeners.
func NewNotifier(opts ...Option) *Notifier {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Notifier{
		logger: options.logger.Named(options.name),
	}
}

// Subscribe registers l and returns a handle for unsubscribing it.
// Listeners are notified in subscription order. A nil listener is not
// registered; the returned zero handle unsubscribes nothing.
func (n *Notifier) Subscribe(l Listener) Subscription {
	if l == nil {
		return Subscription{}
	}

	id := uuid.New()

	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, entry{id: id, listener: l})

	return Subscription{id: id}
}

// Unsubscribe removes the registration identified by s. It is a no-op when
// the registration was already removed or s is the zero value.
func (n *Notifier) Unsubscribe(s Subscription) {
	if s.id == uuid.Nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.id == s.id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}

// NotifyAll invokes every currently registered listener, in subscription
// order, synchronously on the calling goroutine. A panicking listener does
// not prevent the remaining listeners from running; the panic is recovered
// and logged. NotifyAll itself never fails.
func (n *Notifier) NotifyAll() {
	n.mu.Lock()
	snapshot := make([]entry, len(n.entries))
	copy(snapshot, n.entries)
	n.mu.Unlock()

	for _, e := range snapshot {
		n.invoke(e)
	}
}

// Len returns the number of current registrations.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// invoke runs a single listener, isolating panics.
func (n *Notifier) invoke(e entry) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096)
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			n.logger.With(
				"subscription_id", e.id.String(),
				"panic_values", fmt.Sprintf("%v", r),
				"stack_trace", string(stackTrace),
			).Error("panic recovered in listener")
		}
	}()

	e.listener()
}
