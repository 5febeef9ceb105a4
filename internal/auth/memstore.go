package auth

import (
	"context"
	"sync"
)

// MemStore implements Store with in-process concurrency safety.
// NOTE: Replace with PGStore when durability is required.
type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]*Identity
	byAccount  map[string]string // account number -> username
}

// NewMemStore creates an empty credential store.
func NewMemStore() *MemStore {
	return &MemStore{
		byUsername: make(map[string]*Identity),
		byAccount:  make(map[string]string),
	}
}

func (s *MemStore) FindByLogin(ctx context.Context, username, accountNumber string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.byUsername[username]
	if !ok || identity.AccountNumber != accountNumber {
		return nil, ErrNotFound
	}
	out := *identity
	return &out, nil
}

func (s *MemStore) Exists(ctx context.Context, username, accountNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.byUsername[username]; ok {
		return true, nil
	}
	if _, ok := s.byAccount[accountNumber]; ok {
		return true, nil
	}
	return false, nil
}

// Insert checks both uniqueness constraints and writes under one lock, so two
// racing registrations with the same username cannot both succeed.
func (s *MemStore) Insert(ctx context.Context, identity *Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUsername[identity.Username]; ok {
		return ErrDuplicateIdentity
	}
	if _, ok := s.byAccount[identity.AccountNumber]; ok {
		return ErrDuplicateIdentity
	}
	stored := *identity
	s.byUsername[identity.Username] = &stored
	s.byAccount[identity.AccountNumber] = identity.Username
	return nil
}

var _ Store = (*MemStore)(nil)
