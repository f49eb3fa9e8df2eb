// Package event implements the change notification primitive the item
// service uses to tell observers the collection changed.
package event

// Listener receives a notification. The data value is whatever the
// emitter passed along; observers that only need the signal can ignore it.
type Listener func(data any)

// Notifier holds an ordered registry of listeners and invokes them
// synchronously on emit. It is not safe for concurrent use and does not
// guard against re-entrant emits; callers own both concerns.
type Notifier struct {
	listeners []Listener
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe appends one or more listeners to the registry. Listeners are
// never deduplicated and cannot be removed.
func (n *Notifier) Subscribe(listeners ...Listener) {
	n.listeners = append(n.listeners, listeners...)
}

// Emit invokes every registered listener in registration order, passing
// data through. Panics from a listener propagate to the caller.
func (n *Notifier) Emit(data any) {
	for _, l := range n.listeners {
		l(data)
	}
}
