package validation

import (
	"errors"
	"strings"
)

// Violation describes a single rejected input field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations accumulates field-level failures so a response can report every
// problem at once instead of stopping at the first.
type Violations []Violation

// Add appends a violation.
func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// Err returns nil when no field failed, otherwise an *Error wrapping the
// collected violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &Error{Violations: v}
}

// Error carries the full set of violations across layer boundaries.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, viol := range e.Violations {
		parts = append(parts, viol.Field+": "+viol.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsError extracts an *Error from err if present.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
