package events

import "sync"

// Handler consumes a dispatched event.
type Handler func(Event)

type subscriber struct {
	id    int
	kinds map[Kind]bool
	h     Handler
}

// Bus is the synchronous in-process publish/subscribe hub connecting models
// and views. Emit invokes every matching kind subscriber in registration
// order, then every all-subscriber in registration order, and does not return
// until each handler (including anything it emits in turn) has completed.
// Handlers are not isolated from each other: a panicking handler propagates
// to the Emit caller.
type Bus struct {
	mu     sync.Mutex
	nextID int
	kinds  []subscriber
	all    []subscriber
}

func NewBus() *Bus {
	return &Bus{}
}

// On subscribes h to a single kind and returns a subscription id for Off.
func (b *Bus) On(kind Kind, h Handler) int {
	return b.OnKinds([]Kind{kind}, h)
}

// OnKinds subscribes h to a group of kinds at once.
func (b *Bus) OnKinds(kinds []Kind, h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	set := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	b.nextID++
	b.kinds = append(b.kinds, subscriber{id: b.nextID, kinds: set, h: h})
	return b.nextID
}

// OnAll subscribes h to every event. All-subscribers run after kind
// subscribers on each emit.
func (b *Bus) OnAll(h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.all = append(b.all, subscriber{id: b.nextID, h: h})
	return b.nextID
}

// Off removes the subscription with the given id. Unknown ids are a no-op.
func (b *Bus) Off(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.kinds = removeSubscriber(b.kinds, id)
	b.all = removeSubscriber(b.all, id)
}

func removeSubscriber(subs []subscriber, id int) []subscriber {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Emit dispatches e synchronously to all matching subscribers.
func (b *Bus) Emit(e Event) {
	kind := e.EventKind()

	// Snapshot under lock so a handler can subscribe or unsubscribe without
	// deadlocking a nested Emit.
	b.mu.Lock()
	matched := make([]Handler, 0, len(b.kinds)+len(b.all))
	for _, s := range b.kinds {
		if s.kinds[kind] {
			matched = append(matched, s.h)
		}
	}
	for _, s := range b.all {
		matched = append(matched, s.h)
	}
	b.mu.Unlock()

	for _, h := range matched {
		h(e)
	}
}
