package auth

import "context"

// Store describes persistence operations required by the credential layer.
// Insert must check uniqueness and write atomically with respect to
// concurrent registrations.
type Store interface {
	// FindByLogin matches on both username and account number exactly.
	FindByLogin(ctx context.Context, username, accountNumber string) (*Identity, error)
	// Exists reports whether either the username or the account number is
	// already registered.
	Exists(ctx context.Context, username, accountNumber string) (bool, error)
	// Insert stores a new identity. Returns ErrDuplicateIdentity when the
	// username or account number collides with an existing record.
	Insert(ctx context.Context, identity *Identity) error
}
