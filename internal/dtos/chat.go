// File: internal/dtos/chat.go
package dtos

import (
	"errors"
	"strings"
	"time"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
)

// HistoryTurn is one prior conversation turn supplied by the caller to seed
// model context. Any role other than "user" is treated as the model side.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequestDTO is the body of POST /chat.
type ChatRequestDTO struct {
	Prompt      string        `json:"prompt"`
	UserID      string        `json:"user_id"`
	ChatID      string        `json:"chat_id,omitempty"`
	Screenshot  string        `json:"screenshot,omitempty"`
	ChatHistory []HistoryTurn `json:"chat_history,omitempty"`
}

// Validate checks the required fields at the HTTP boundary.
func (r *ChatRequestDTO) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errors.New("prompt is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	return nil
}

// ChatResponseDTO is the success body of POST /chat.
type ChatResponseDTO struct {
	Response string `json:"response"`
	ChatID   string `json:"chat_id"`
}

// ChatViewDTO is one chat entry in GET /chats/{user_id}.
type ChatViewDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	LastMessage string `json:"last_message"`
	UpdatedAt   string `json:"updated_at"`
}

// MessageViewDTO is one message entry in GET /chats/{user_id}/{chat_id}.
// Timestamp is an ISO-8601 string with the store's sentinel already resolved.
type MessageViewDTO struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
	HasImage  bool   `json:"has_image"`
}

// ChatListResponseDTO wraps the chat list.
type ChatListResponseDTO struct {
	Chats []ChatViewDTO `json:"chats"`
}

// MessageListResponseDTO wraps the message list.
type MessageListResponseDTO struct {
	Messages []MessageViewDTO `json:"messages"`
}

// ErrorResponseDTO is the error body for every failed request.
type ErrorResponseDTO struct {
	Detail string `json:"detail"`
}

// FromChat maps a domain.Chat to its list view.
func FromChat(chat domain.Chat) ChatViewDTO {
	return ChatViewDTO{
		ID:          chat.ID,
		Title:       chat.Title,
		LastMessage: chat.LastMessage,
		UpdatedAt:   chat.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromChatSlice maps a slice of domain.Chat, preserving order.
func FromChatSlice(chats []domain.Chat) []ChatViewDTO {
	views := make([]ChatViewDTO, len(chats))
	for i, c := range chats {
		views[i] = FromChat(c)
	}
	return views
}

// FromMessage maps a domain.Message to its list view.
func FromMessage(msg domain.Message) MessageViewDTO {
	return MessageViewDTO{
		ID:        msg.ID,
		Content:   msg.Content,
		Role:      msg.Role,
		Timestamp: msg.Timestamp.UTC().Format(time.RFC3339),
		HasImage:  msg.HasImage,
	}
}

// FromMessageSlice maps a slice of domain.Message, preserving order.
func FromMessageSlice(msgs []domain.Message) []MessageViewDTO {
	views := make([]MessageViewDTO, len(msgs))
	for i, m := range msgs {
		views[i] = FromMessage(m)
	}
	return views
}
