package domain

import (
	"errors"
	"fmt"
)

// ErrProductNotFound marks a point lookup for an absent product id.
// Absence is an expected outcome, surfaced as 404, never logged as an
// error.
var ErrProductNotFound = errors.New("product not found")

// ValidationError reports a required request field that is missing or
// malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// ConnectionError reports a failure to reach or authenticate against
// the relational store.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("rds connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StoreError wraps a provider-level fault from either store with the
// operation that hit it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
