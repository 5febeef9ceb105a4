package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"crosspay.org/internal/ids"
	"crosspay.org/internal/validation"
)

const defaultTokenTTL = 24 * time.Hour

var (
	usernameRe      = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	accountNumberRe = regexp.MustCompile(`^\d{8,12}$`)
)

// Service verifies credentials, registers identities, and issues session
// tokens.
type Service struct {
	store      Store
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithTokenTTL overrides the session token lifetime.
func WithTokenTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// WithBcryptCost overrides the password hash cost (useful for tests).
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs the authenticator.
func NewService(store Store, secret string, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, errors.New("auth: store is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: secret is required")
	}
	s := &Service{
		store:      store,
		secret:     []byte(secret),
		tokenTTL:   defaultTokenTTL,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register validates the input, hashes the password, and stores a new
// customer identity. All violated fields are reported together.
func (s *Service) Register(ctx context.Context, username, accountNumber, password string) (Identity, error) {
	return s.register(ctx, username, accountNumber, password, RoleCustomer)
}

// RegisterEmployee stores an identity carrying the employee role. Not exposed
// over HTTP; used to seed operator accounts at startup.
func (s *Service) RegisterEmployee(ctx context.Context, username, accountNumber, password string) (Identity, error) {
	return s.register(ctx, username, accountNumber, password, RoleEmployee)
}

func (s *Service) register(ctx context.Context, username, accountNumber, password string, role Role) (Identity, error) {
	username = strings.TrimSpace(username)
	accountNumber = strings.TrimSpace(accountNumber)

	var violations validation.Violations
	if !usernameRe.MatchString(username) {
		violations.Add("username", "must be 3-20 characters: letters, digits, underscore")
	}
	if !accountNumberRe.MatchString(accountNumber) {
		violations.Add("account_number", "must be 8-12 digits")
	}
	if msg, ok := checkPasswordPolicy(password); !ok {
		violations.Add("password", msg)
	}
	if err := violations.Err(); err != nil {
		return Identity{}, err
	}

	// The hash is computed before touching the store so the slow bcrypt work
	// never runs under a store lock.
	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return Identity{}, err
	}

	identity := Identity{
		ID:            ids.New(),
		Username:      username,
		AccountNumber: accountNumber,
		PasswordHash:  hash,
		Role:          role,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.Insert(ctx, &identity); err != nil {
		return Identity{}, err
	}
	return identity, nil
}

// Login verifies the credentials and issues a signed session token. Unknown
// logins and wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, accountNumber, password string) (string, time.Time, Identity, error) {
	username = strings.TrimSpace(username)
	accountNumber = strings.TrimSpace(accountNumber)
	if username == "" || accountNumber == "" || password == "" {
		return "", time.Time{}, Identity{}, ErrInvalidCredentials
	}
	identity, err := s.store.FindByLogin(ctx, username, accountNumber)
	if err != nil {
		return "", time.Time{}, Identity{}, ErrInvalidCredentials
	}
	if err := VerifyPassword(identity.PasswordHash, password); err != nil {
		return "", time.Time{}, Identity{}, ErrInvalidCredentials
	}
	token, expiresAt, err := signToken(*identity, s.secret, s.tokenTTL, s.now().UTC())
	if err != nil {
		return "", time.Time{}, Identity{}, err
	}
	return token, expiresAt, *identity, nil
}

// VerifyToken validates a bearer token and returns the identity snapshot
// embedded in its claims.
func (s *Service) VerifyToken(token string) (Identity, error) {
	claims, err := parseToken(token, s.secret, func() time.Time { return s.now().UTC() })
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		ID:            claims.Subject,
		Username:      claims.Username,
		AccountNumber: claims.AccountNumber,
		Role:          claims.Role,
	}, nil
}

// checkPasswordPolicy enforces the full complexity rule: at least 8
// characters with upper, lower, digit, and symbol classes present.
func checkPasswordPolicy(password string) (string, bool) {
	if len(password) < 8 {
		return "must be at least 8 characters", false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return "must contain upper and lower case letters, a digit, and a symbol", false
	}
	return "", true
}
