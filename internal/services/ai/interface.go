// File: internal/services/ai/interface.go
package ai

import "context"

// History roles as the provider expects them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior exchange replayed to the provider before a new prompt.
type Turn struct {
	Role    string
	Content string
}

// Generator produces model responses. Implementations hold no conversation
// state between calls; the full history is resubmitted every time.
type Generator interface {
	// GenerateText replays history in order, then submits the prompt.
	GenerateText(ctx context.Context, prompt string, history []Turn) (string, error)

	// GenerateFromImage answers a prompt about decoded binary image data.
	GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
