package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested entity does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidStateTransition is returned when a step change is not allowed
type ErrInvalidStateTransition struct {
	From fmt.Stringer
	To   fmt.Stringer
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrValidation carries per-field validation messages
type ErrValidation struct {
	Fields map[string]string
}

func (e *ErrValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrPaymentProcessing is returned while a payment submission is still in flight
type ErrPaymentProcessing struct{}

func (e *ErrPaymentProcessing) Error() string {
	return "payment is already being processed"
}
