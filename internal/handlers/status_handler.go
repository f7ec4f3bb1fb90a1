// File: internal/handlers/status_handler.go
package handlers

import "net/http"

// Root reports that the API is up.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ChattyAI API is running"})
}

// Health is a bare liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
