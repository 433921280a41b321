package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes; stores map driver-level failures (e.g. unique violations) onto them.
var (
	// ErrNotFound is returned when a referenced job or application is absent.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateApplication is returned when a seeker applies twice to the
	// same job.
	ErrDuplicateApplication = errors.New("already applied for this job")

	// ErrMissingResume is returned when neither an uploaded resume nor a
	// stored profile resume is available at submission time.
	ErrMissingResume = errors.New("no resume available")
)

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ParseRole converts a raw header value to a Role, returning an error for
// unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
