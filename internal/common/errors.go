package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("already exists")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrExpired            = errors.New("expired")
	ErrRateLimited        = errors.New("too many attempts")

	// ErrDependency marks a failure of a collaborator (storage, mail, cache).
	ErrDependency = errors.New("dependency failure")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// known lists the sentinels a caller is expected to branch on.
var known = []error{
	ErrorNotFound,
	ErrConflict,
	ErrValidation,
	ErrInvalidCredentials,
	ErrUnauthenticated,
	ErrExpired,
	ErrRateLimited,
	ErrDependency,
	ErrInvalidToken,
}

// Dependency wraps a collaborator failure so that both ErrDependency and the
// original cause can be matched with errors.Is.
func Dependency(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
}

// Validation wraps input validation details into ErrValidation.
func Validation(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// IsKnown reports whether err carries one of the sentinel errors above.
func IsKnown(err error) bool {
	for _, k := range known {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}

// Classify returns err unchanged when it already carries a sentinel and
// wraps it as a dependency failure of op otherwise.
func Classify(op string, err error) error {
	if err == nil || IsKnown(err) {
		return err
	}
	return Dependency(op, err)
}
