package stream

import (
	"context"
	"sync"
	"time"
)

// PaymentEvent describes a payment entering a lifecycle state. The employee
// portal consumes these over SSE to refresh its review queue without
// polling.
type PaymentEvent struct {
	PaymentID     string    `json:"payment_id"`
	Status        string    `json:"status"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	OwnerUsername string    `json:"owner_username"`
	Timestamp     time.Time `json:"timestamp"`
}

// Stream fan-outs payment events to all active subscribers.
type Stream struct {
	mu   sync.RWMutex
	subs map[int]chan PaymentEvent
	next int
}

// New initialises an empty stream.
func New() *Stream {
	return &Stream{subs: make(map[int]chan PaymentEvent)}
}

// Subscribe registers a subscriber and returns a channel which will receive
// events. The channel is closed when the provided context ends.
func (s *Stream) Subscribe(ctx context.Context) <-chan PaymentEvent {
	ch := make(chan PaymentEvent, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Publish fan-outs the event to all subscribers.
func (s *Stream) Publish(evt PaymentEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
			// Drop when subscriber is slow to avoid blocking.
		}
	}
}
