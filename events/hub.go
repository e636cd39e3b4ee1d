package events

import "github.com/grimhold/rockbuster/config"

// Hub is a registry mapping event kind to an ordered subscriber list.
// Delivery order is insertion order. Not safe for concurrent use; the
// simulation touches it only within the single frame pass.
type Hub struct {
	subscribers map[Kind][]Subscriber
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[Kind][]Subscriber)}
}

// Subscribe registers s for kind. Re-subscribing the same subscriber to
// the same kind is a no-op, so a publish notifies it exactly once.
func (h *Hub) Subscribe(kind Kind, s Subscriber) {
	for _, existing := range h.subscribers[kind] {
		if existing == s {
			return
		}
	}
	h.subscribers[kind] = append(h.subscribers[kind], s)
}

// Unsubscribe removes s from kind. Unknown subscribers are ignored.
func (h *Hub) Unsubscribe(kind Kind, s Subscriber) {
	list := h.subscribers[kind]
	for i, existing := range list {
		if existing == s {
			h.subscribers[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish synchronously notifies every subscriber registered for
// e.Kind at the moment of the call. The list is snapshotted first, so
// subscribe/unsubscribe from inside a handler takes effect only for
// later publishes. A panicking handler is logged and skipped; delivery
// continues with the remaining subscribers.
func (h *Hub) Publish(e Event) {
	list := h.subscribers[e.Kind]
	if len(list) == 0 {
		return
	}
	snapshot := make([]Subscriber, len(list))
	copy(snapshot, list)

	for _, s := range snapshot {
		h.deliver(s, e)
	}
}

func (h *Hub) deliver(s Subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			config.Logger().Error("event subscriber panicked", "kind", e.Kind, "panic", r)
		}
	}()
	s.Notify(e)
}
