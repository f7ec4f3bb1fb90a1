// File: internal/domain/message.go
package domain

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one immutable turn within a chat. Timestamp is assigned by
// the store on write; a zero Timestamp on a write means "server time".
type Message struct {
	ID        string    `json:"id" firestore:"-"`
	Content   string    `json:"content" firestore:"content"`
	Role      string    `json:"role" firestore:"role"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	HasImage  bool      `json:"has_image" firestore:"has_image"`
}
