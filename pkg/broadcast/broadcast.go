// Package broadcast provides a generic in-process publish-subscribe bus.
package broadcast

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNoSubscribers is returned by Publish when nobody is listening.
var ErrNoSubscribers = errors.New("no active subscribers")

const defaultBuffer = 64

// Bus fans published values out to every active subscription.
// Publish never blocks: a subscriber whose buffer is full misses the value.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscription[T]
	buffer int
}

// Subscription receives values published after it was created.
type Subscription[T any] struct {
	ID uuid.UUID
	C  <-chan T

	ch     chan T
	bus    *Bus[T]
	closed bool
}

// New constructs a Bus whose subscriptions buffer up to buffer values.
func New[T any](buffer int) *Bus[T] {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus[T]{
		subs:   make(map[uuid.UUID]*Subscription[T]),
		buffer: buffer,
	}
}

// Subscribe registers a new subscription. Callers must Close it.
func (b *Bus[T]) Subscribe() *Subscription[T] {
	ch := make(chan T, b.buffer)
	sub := &Subscription[T]{
		ID:  uuid.New(),
		C:   ch,
		ch:  ch,
		bus: b,
	}

	b.mu.Lock()
	b.subs[sub.ID] = sub
	b.mu.Unlock()

	return sub
}

// Publish delivers v to every subscription with room in its buffer and
// returns how many received it.
func (b *Bus[T]) Publish(v T) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.subs) == 0 {
		return 0, ErrNoSubscribers
	}

	delivered := 0
	for _, sub := range b.subs {
		select {
		case sub.ch <- v:
			delivered++
		default:
		}
	}
	return delivered, nil
}

// Close unregisters the subscription and closes its channel. It is idempotent.
func (s *Subscription[T]) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	delete(s.bus.subs, s.ID)
	close(s.ch)
}
