package payments

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"crosspay.org/internal/auth"
	"crosspay.org/internal/ids"
	"crosspay.org/internal/validation"
)

// swiftRe is the structural BIC pattern: 6 letters, 2 alphanumerics, and an
// optional 3-character branch suffix (8 or 11 characters total).
var swiftRe = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// CreateInput is the raw payment creation request. Amount arrives as the
// decimal wire string so precision violations are caught before any
// conversion.
type CreateInput struct {
	Amount      string
	Currency    string
	Provider    string
	AccountInfo string
	SwiftCode   string
}

// Service is the payment lifecycle engine. It validates creation input and
// enforces the pending -> verified -> completed sequence on top of the
// repository's compare-and-swap primitive.
type Service struct {
	repo       Repository
	currencies *CurrencySet
	now        func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs the lifecycle engine.
func NewService(repo Repository, currencies *CurrencySet, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, errors.New("payments: repository is required")
	}
	if currencies == nil {
		currencies = NewCurrencySet(nil)
	}
	s := &Service{repo: repo, currencies: currencies, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Currencies exposes the supported set for the currencies endpoint.
func (s *Service) Currencies() []string {
	return s.currencies.Codes()
}

// Create validates every field, assigns id and timestamp, and stores the
// payment as pending, owned by the caller. All violations are reported
// together.
func (s *Service) Create(ctx context.Context, identity auth.Identity, in CreateInput) (Payment, error) {
	if err := auth.Authorize(identity.Role, auth.PermPaymentCreate); err != nil {
		return Payment{}, err
	}

	var violations validation.Violations

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		violations.Add("amount", err.Error())
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if !s.currencies.Contains(currency) {
		violations.Add("currency", "unsupported currency; supported: "+strings.Join(s.currencies.Codes(), ", "))
	}
	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		violations.Add("provider", "is required")
	}
	accountInfo := strings.TrimSpace(in.AccountInfo)
	if accountInfo == "" {
		violations.Add("account_info", "is required")
	}
	swift := strings.TrimSpace(in.SwiftCode)
	if !swiftRe.MatchString(swift) {
		violations.Add("swift_code", "must be 8 or 11 characters: 6 letters, 2 alphanumerics, optional 3-character branch")
	}
	if err := violations.Err(); err != nil {
		return Payment{}, err
	}

	payment := Payment{
		ID:            ids.New(),
		Amount:        amount,
		Currency:      currency,
		Provider:      provider,
		AccountInfo:   accountInfo,
		SwiftCode:     swift,
		Status:        StatusPending,
		CreatedAt:     s.now().UTC(),
		OwnerID:       identity.ID,
		OwnerUsername: identity.Username,
	}
	if err := s.repo.Insert(ctx, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// List returns every payment for employees and only the caller's own
// payments for customers, in stable creation-time order.
func (s *Service) List(ctx context.Context, identity auth.Identity) ([]Payment, error) {
	if auth.HasPermission(identity.Role, auth.PermPaymentListAll) {
		return s.repo.ListAll(ctx)
	}
	if err := auth.Authorize(identity.Role, auth.PermPaymentListOwn); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, identity.ID)
}

// Verify moves a pending payment to verified. Employee only; any other
// current status fails with ErrInvalidTransition.
func (s *Service) Verify(ctx context.Context, identity auth.Identity, paymentID string) (Payment, error) {
	return s.transition(ctx, identity, paymentID, auth.PermPaymentVerify, StatusPending)
}

// Submit releases a verified payment toward the settlement network. Employee
// only; the payment must be verified first.
func (s *Service) Submit(ctx context.Context, identity auth.Identity, paymentID string) (Payment, error) {
	return s.transition(ctx, identity, paymentID, auth.PermPaymentSubmit, StatusVerified)
}

func (s *Service) transition(ctx context.Context, identity auth.Identity, paymentID, perm string, from Status) (Payment, error) {
	if err := auth.Authorize(identity.Role, perm); err != nil {
		return Payment{}, err
	}
	to, ok := from.next()
	if !ok {
		return Payment{}, ErrInvalidTransition
	}
	updated, err := s.repo.TransitionStatus(ctx, paymentID, from, to)
	if err != nil {
		return Payment{}, err
	}
	return *updated, nil
}
