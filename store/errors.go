package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Typed failures surfaced by the data-access layer. Controllers map these
// onto HTTP status codes; nothing here is transport-specific.

// ValidationError reports a bad input shape or range (missing required
// field, negative quantity, malformed phone number).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a row that is absent or not owned by the calling
// tenant. The two cases are deliberately indistinguishable so that ids
// belonging to other tenants cannot be probed.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// AuthorizationError reports a tenant mismatch on an operation that
// carries an explicit owner id.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "not authorized: " + e.Reason
}

// InsufficientStockError names the first product whose available quantity
// cannot cover a requested sale item.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// TransientError wraps a network or driver failure that is safe to retry.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient backend failure: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error { return e.Err }

// AuthenticationError reports bad or missing backend credentials. Fatal
// until the service is reconfigured.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// ErrIllegalTransition rejects a sale status change outside
// pending->completed / pending->cancelled.
var ErrIllegalTransition = errors.New("illegal sale status transition")
