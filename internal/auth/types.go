package auth

import "time"

// Role is the access class attached to an identity.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is one of the defined access classes.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleEmployee
}

// Identity is a registered user record. The password hash is never exposed
// through the API; handlers serialize Summary instead.
type Identity struct {
	ID            string
	Username      string
	AccountNumber string
	PasswordHash  string
	Role          Role
	CreatedAt     time.Time
}

// Summary is the API-safe projection of an identity.
type Summary struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	AccountNumber string `json:"account_number"`
	Role          Role   `json:"role"`
}

// Summary returns the projection used in login and register responses.
func (i Identity) Summary() Summary {
	return Summary{
		ID:            i.ID,
		Username:      i.Username,
		AccountNumber: i.AccountNumber,
		Role:          i.Role,
	}
}
