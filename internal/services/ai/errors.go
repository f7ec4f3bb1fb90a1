// File: internal/services/ai/errors.go
package ai

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeValidation ErrorType = "VALIDATION"
)

// AIError carries the failing operation and the upstream cause so handlers
// can surface the provider's message to the caller.
type AIError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Operation: "config", Message: msg}
}

func NewProviderError(operation, msg string, cause error) *AIError {
	return &AIError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}

func NewValidationError(operation, msg string, cause error) *AIError {
	return &AIError{Type: ErrTypeValidation, Operation: operation, Message: msg, Cause: cause}
}

// isRetryable reports whether a failed call is worth repeating. Config and
// validation errors never change between attempts.
func isRetryable(err error) bool {
	if aiErr, ok := err.(*AIError); ok {
		return aiErr.Type != ErrTypeConfig && aiErr.Type != ErrTypeValidation
	}
	return true
}
