package payments

import "context"

// Repository owns all payment records. TransitionStatus must be a
// compare-and-swap on the expected current status so that two concurrent
// transition attempts on the same id are serialized.
type Repository interface {
	Insert(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	// ListAll returns every payment in stable creation-time order.
	ListAll(ctx context.Context) ([]Payment, error)
	// ListByOwner returns the caller's own payments in creation-time order.
	ListByOwner(ctx context.Context, ownerID string) ([]Payment, error)
	// TransitionStatus moves id from the expected status to the next one.
	// Returns ErrNotFound for an unknown id and ErrInvalidTransition when the
	// current status differs from the expected one.
	TransitionStatus(ctx context.Context, id string, from, to Status) (*Payment, error)
}
