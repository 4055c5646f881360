package domain

import (
	"errors"
	"fmt"
)

// ErrBusinessRule is matched (via errors.Is) by every recoverable auth or
// business-rule failure. The transport layer maps it to a 400-class status.
var ErrBusinessRule = errors.New("business rule violation")

// ruleError is a sentinel that also reports itself as an ErrBusinessRule.
type ruleError struct {
	msg string
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Is(target error) bool { return target == ErrBusinessRule }

var (
	ErrDuplicateEmail           error = &ruleError{msg: "email already exists"}
	ErrInvalidCredentials       error = &ruleError{msg: "invalid email or password"}
	ErrReferencedEntityNotFound error = &ruleError{msg: "referenced client not found"}
	ErrDependencyConflict       error = &ruleError{msg: "cannot delete a client that has associated orders"}
	ErrInvalidAmount            error = &ruleError{msg: "order total must be a positive amount within the supported range"}
	ErrIdempotencyKeyReused     error = &ruleError{msg: "idempotency key already used for a different order"}
)

// ErrNotFound is the generic entity-missing error outside the auth flow.
var ErrNotFound = errors.New("not found")

var (
	ErrClientNotFound = fmt.Errorf("client %w", ErrNotFound)
	ErrOrderNotFound  = fmt.Errorf("order %w", ErrNotFound)
)

// ErrMissingSigningSecret is a configuration error: the service cannot start
// without a token signing secret.
var ErrMissingSigningSecret = errors.New("jwt signing secret not configured")

// ErrInvalidToken is returned when a bearer token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")
