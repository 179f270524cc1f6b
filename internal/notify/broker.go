package notify

import (
	"log/slog"
	"sync"
)

const defaultBufferSize = 16

// Publisher is what the letter service needs from a broker.
type Publisher interface {
	Publish(evt Event)
}

// Subscription receives events until it is unsubscribed, dropped for being
// too slow, or the broker closes. Events is closed in all three cases.
type Subscription struct {
	Events <-chan Event
	ch     chan Event
}

type Broker struct {
	mu      sync.Mutex
	subs    map[*Subscription]struct{}
	bufSize int
	closed  bool
}

var _ Publisher = (*Broker)(nil)

func NewBroker(bufSize int) *Broker {
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}
	return &Broker{
		subs:    make(map[*Subscription]struct{}),
		bufSize: bufSize,
	}
}

// Subscribe registers a new subscriber. On a closed broker the returned
// subscription is already closed.
func (b *Broker) Subscribe() *Subscription {
	ch := make(chan Event, b.bufSize)
	sub := &Subscription{Events: ch, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return sub
	}

	b.subs[sub] = struct{}{}
	slog.Info("Client connected.", "clients", len(b.subs))
	return sub
}

// Unsubscribe removes sub. It is safe to call more than once.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remove(sub) {
		slog.Info("Client disconnected.", "clients", len(b.subs))
	}
}

func (b *Broker) remove(sub *Subscription) bool {
	if _, ok := b.subs[sub]; !ok {
		return false
	}
	delete(b.subs, sub)
	close(sub.ch)
	return true
}

// Publish sends evt to every subscriber without blocking. Subscribers whose
// buffer is full are dropped.
func (b *Broker) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	var dropped int
	for sub := range b.subs {
		select {
		case sub.ch <- evt:
		default:
			b.remove(sub)
			dropped++
		}
	}

	if dropped > 0 {
		slog.Warn("Dropped slow clients.", "dropped", dropped, "clients", len(b.subs))
	}

	slog.Debug("Event published.", "type", evt.Type, "name", evt.Name, "clients", len(b.subs))
}

func (b *Broker) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends every subscription. Later publishes are ignored.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for sub := range b.subs {
		b.remove(sub)
	}
	slog.Info("Notification broker closed.")
}
