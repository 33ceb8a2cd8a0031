package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an unresolved identity. Repos translate their
// driver's not-found into this sentinel so callers can errors.Is it.
var ErrNotFound = errors.New("not found")

// ValidationError reports a submission or patch that would violate an
// aggregate invariant. Field is a path into the offending input, e.g.
// "product_items[1].sizes[0].price".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
