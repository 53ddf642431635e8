// Package bus is the process-wide notification channel between views. A
// publish carries no payload: the channel name alone tells subscribers to
// re-read their collection.
package bus

import "sync"

// Channel identifies a collection-changed notification. The set is closed so
// a typo cannot create a dead channel.
type Channel string

const (
	CartUpdated     Channel = "cart-updated"
	OrdersUpdated   Channel = "orders-updated"
	FeedbackUpdated Channel = "feedback-updated"
	HistoryUpdated  Channel = "history-updated"
	ListingsUpdated Channel = "listings-updated"
)

type subscription struct {
	id int
	fn func()
}

// Bus delivers synchronously, in subscription order, within the publisher's
// call stack. There is no buffering and no replay for late subscribers.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Channel][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[Channel][]subscription)}
}

// Subscribe registers a listener and returns the function that removes it.
func (b *Bus) Subscribe(ch Channel, fn func()) (unsubscribe func()) {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs[ch] = append(b.subs[ch], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		current := b.subs[ch]
		for i, sub := range current {
			if sub.id == id {
				b.subs[ch] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every listener subscribed at this moment. The subscriber
// list is snapshotted under the lock but listeners run outside it, so a
// listener may publish again (or subscribe/unsubscribe) without deadlocking.
func (b *Bus) Publish(ch Channel) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs[ch]))
	copy(snapshot, b.subs[ch])
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn()
	}
}
