// File: internal/services/store/errors.go
package store

import (
	"errors"
	"fmt"
)

// ErrUnavailable means the store client never initialized; read handlers
// surface it as a service-unavailable response.
var ErrUnavailable = errors.New("conversation store not initialized")

// StoreError wraps a Firestore failure with the operation that produced it.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store %s error: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("store %s error: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewConfigError(message string) *StoreError {
	return &StoreError{Op: "config", Message: message}
}

func NewOperationError(message string, err error) *StoreError {
	return &StoreError{Op: "operation", Message: message, Err: err}
}
