// File: internal/services/store/interface.go
package store

import (
	"context"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
)

// Metadata is the derived chat display fields merged into the chat document
// on every exchange. Unset fields of the document are never touched.
type Metadata struct {
	Title       string
	LastMessage string
}

// ConversationStore persists chats and their message sub-collections in a
// users/{user_id}/chats/{chat_id}/messages hierarchy.
type ConversationStore interface {
	// AppendMessage writes one immutable message with a server-assigned
	// timestamp.
	AppendMessage(ctx context.Context, userID, chatID string, msg domain.Message) error

	// UpsertChatMetadata merges the derived display fields and bumps the
	// chat's updated_at to server time.
	UpsertChatMetadata(ctx context.Context, userID, chatID string, meta Metadata) error

	// ListChats returns the user's chats sorted by updated_at descending.
	// No chats is an empty slice, not an error.
	ListChats(ctx context.Context, userID string) ([]domain.Chat, error)

	// ListMessages returns the chat's messages sorted by timestamp
	// ascending, with pending server timestamps resolved to request time.
	ListMessages(ctx context.Context, userID, chatID string) ([]domain.Message, error)
}
