package auth

import "errors"

var (
	// ErrDuplicateIdentity means the username or account number is taken.
	ErrDuplicateIdentity = errors.New("auth: username or account number already exists")
	// ErrInvalidCredentials covers both unknown login and wrong password so a
	// caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidToken indicates a malformed or tampered token.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrAccessDenied indicates an authenticated caller lacking permission.
	ErrAccessDenied = errors.New("auth: access denied")
	// ErrNotFound indicates a missing identity record.
	ErrNotFound = errors.New("auth: identity not found")
)
