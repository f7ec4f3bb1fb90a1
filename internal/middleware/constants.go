// File: internal/middleware/constants.go
package middleware

// Context keys for middleware communication.
type contextKey string

const (
	// AuthUIDKey holds the verified Firebase UID when auth is enforced.
	AuthUIDKey contextKey = "auth_uid"

	// RequestIDKey holds the per-request id assigned by the logging
	// middleware.
	RequestIDKey contextKey = "request_id"
)
