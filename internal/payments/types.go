package payments

import (
	"errors"
	"time"
)

// Status is the lifecycle position of a payment. pending is the sole initial
// state, completed the sole terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusVerified  Status = "verified"
	StatusCompleted Status = "completed"
)

// next returns the only legal successor of a status. Transitions are
// monotonic: there is no path back and no path that skips verified.
func (s Status) next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusVerified, true
	case StatusVerified:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Payment is a requested cross-border transfer moving through the fixed
// verification workflow.
type Payment struct {
	ID            string    `json:"id"`
	Amount        Amount    `json:"amount"`
	Currency      string    `json:"currency"`
	Provider      string    `json:"provider"`
	AccountInfo   string    `json:"account_info"`
	SwiftCode     string    `json:"swift_code"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerID       string    `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
}

var (
	ErrNotFound          = errors.New("payments: payment not found")
	ErrInvalidTransition = errors.New("payments: invalid status transition")
)
