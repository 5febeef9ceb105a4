package payments

import (
	"context"
	"sync"
)

// InMemory implements Repository with in-process concurrency safety.
// NOTE: Replace with PGRepo when durability is required.
type InMemory struct {
	mu      sync.RWMutex
	byID    map[string]*Payment
	ordered []string // ids in insertion (creation-time) order
}

// NewInMemory creates an empty payment repository.
func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[string]*Payment)}
}

func (r *InMemory) Insert(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	r.byID[p.ID] = &stored
	r.ordered = append(r.ordered, p.ID)
	return nil
}

func (r *InMemory) Get(ctx context.Context, id string) (*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *InMemory) ListAll(ctx context.Context) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Payment, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *InMemory) ListByOwner(ctx context.Context, ownerID string) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Payment
	for _, id := range r.ordered {
		if p := r.byID[id]; p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// TransitionStatus compares and swaps under the write lock, so a concurrent
// transition that already changed the status makes this one fail instead of
// silently overwriting.
func (r *InMemory) TransitionStatus(ctx context.Context, id string, from, to Status) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Status != from {
		return nil, ErrInvalidTransition
	}
	p.Status = to
	out := *p
	return &out, nil
}

var _ Repository = (*InMemory)(nil)
