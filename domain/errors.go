package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock rejects adding a zero-quantity item to the cart.
	ErrOutOfStock = errors.New("item is out of stock")

	// ErrInvalidCheckout rejects a checkout without a customer or with an
	// empty cart. Nothing is mutated.
	ErrInvalidCheckout = errors.New("checkout requires a customer and a non-empty cart")

	// ErrInsufficientStock aborts a checkout whose committed quantities
	// would drive catalog stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrNotFound = errors.New("not found")
)

// ValidationError rejects an entity edit before any store mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
