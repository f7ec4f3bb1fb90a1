// File: internal/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SherazHussain546/ChattyAI/internal/dtos"
	"github.com/SherazHussain546/ChattyAI/internal/services/chat"
	"github.com/SherazHussain546/ChattyAI/internal/services/store"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError sends the API's error body: {"detail": "..."}.
func writeError(w http.ResponseWriter, detail string, status int) {
	writeJSON(w, status, dtos.ErrorResponseDTO{Detail: detail})
}

// statusForError maps service errors onto HTTP statuses: missing clients
// are a 503, everything else on the primary path is a 500 carrying the
// upstream message.
func statusForError(err error) int {
	if errors.Is(err, chat.ErrAIUnavailable) || errors.Is(err, store.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
