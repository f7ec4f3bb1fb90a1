// File: internal/services/chat/errors.go
package chat

import "errors"

// ErrAIUnavailable means the generator never initialized; the request is
// rejected before any external call.
var ErrAIUnavailable = errors.New("AI models not initialized")
