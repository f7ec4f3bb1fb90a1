// File: internal/domain/chat.go
package domain

import "time"

// Display-field limits for the derived chat metadata.
const (
	TitleMaxChars       = 50
	LastMessageMaxChars = 100
)

// Chat is a persisted conversation thread owned by one user. The full
// message history lives in the chat's message sub-collection; Title and
// LastMessage are derived from the most recent exchange.
type Chat struct {
	ID          string    `json:"id" firestore:"-"`
	Title       string    `json:"title" firestore:"title"`
	LastMessage string    `json:"last_message" firestore:"last_message"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}

// DeriveTitle produces the chat title from the latest prompt.
func DeriveTitle(prompt string) string {
	return truncateWithEllipsis(prompt, TitleMaxChars)
}

// DeriveLastMessage produces the chat preview from the latest AI response.
func DeriveLastMessage(response string) string {
	return truncateWithEllipsis(response, LastMessageMaxChars)
}

// truncateWithEllipsis cuts at max characters (runes, so multi-byte text
// is never split mid-character) and appends "..." only when truncated.
func truncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
