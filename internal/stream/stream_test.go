package stream

import (
	"context"
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := s.Subscribe(ctx)
	b := s.Subscribe(ctx)

	evt := PaymentEvent{PaymentID: "p1", Status: "pending", Amount: "100.00", Currency: "USD"}
	s.Publish(evt)

	for name, ch := range map[string]<-chan PaymentEvent{"a": a, "b": b} {
		select {
		case got := <-ch:
			if got.PaymentID != "p1" {
				t.Errorf("subscriber %s got %+v", name, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s did not receive the event", name)
		}
	}
}

func TestSubscribeClosesOnContextCancel(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Subscribe(ctx)
	cancel()

	select {
	case _, open := <-ch:
		if open {
			t.Fatal("expected channel close, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	// publishing after unsubscribe must not panic or block
	s.Publish(PaymentEvent{PaymentID: "p2"})
}

func TestPublishDropsWhenSubscriberIsSlow(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)
	// fill the buffer without draining
	for i := 0; i < 64; i++ {
		s.Publish(PaymentEvent{PaymentID: "p"})
	}

	// the buffer holds what fit; the rest were dropped, not queued
	if n := len(ch); n == 0 || n > 16 {
		t.Fatalf("buffered %d events", n)
	}
}
