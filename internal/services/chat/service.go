// File: internal/services/chat/service.go
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
	"github.com/SherazHussain546/ChattyAI/internal/services"
	"github.com/SherazHussain546/ChattyAI/internal/services/ai"
	"github.com/SherazHussain546/ChattyAI/internal/services/store"
)

// Service orchestrates one chat exchange: branch to the right generation
// path, then persist the exchange best-effort. Either collaborator may be
// nil when its initialization failed; the service degrades instead of
// dereferencing a missing client.
type Service struct {
	generator     ai.Generator
	conversations store.ConversationStore
	logger        services.Logger
	now           func() time.Time
}

func NewService(generator ai.Generator, conversations store.ConversationStore, logger services.Logger) *Service {
	return &Service{
		generator:     generator,
		conversations: conversations,
		logger:        logger,
		now:           time.Now,
	}
}

// Exchange runs one prompt through the model and returns its response
// together with the chat id (synthesized from request time when the caller
// did not supply one). Persistence failures are logged, never surfaced.
func (s *Service) Exchange(ctx context.Context, req Request) (*Result, error) {
	if s.generator == nil {
		return nil, ErrAIUnavailable
	}

	chatID := req.ChatID
	if chatID == "" {
		chatID = s.newChatID()
	}

	var response string
	var err error
	if req.Screenshot != "" {
		// Vision path: the prompt goes alone, history is deliberately
		// not forwarded.
		var image []byte
		var mimeType string
		image, mimeType, err = ai.DecodeScreenshot(req.Screenshot)
		if err != nil {
			return nil, err
		}
		response, err = s.generator.GenerateFromImage(ctx, req.Prompt, image, mimeType)
	} else {
		response, err = s.generator.GenerateText(ctx, req.Prompt, normalizeHistory(req.History))
	}
	if err != nil {
		return nil, err
	}

	s.persistExchange(ctx, req, chatID, response)

	return &Result{Response: response, ChatID: chatID}, nil
}

// ListChats returns the user's chats, newest-updated first.
func (s *Service) ListChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	if s.conversations == nil {
		return nil, store.ErrUnavailable
	}
	return s.conversations.ListChats(ctx, userID)
}

// ListMessages returns the chat's messages, oldest first.
func (s *Service) ListMessages(ctx context.Context, userID, chatID string) ([]domain.Message, error) {
	if s.conversations == nil {
		return nil, store.ErrUnavailable
	}
	return s.conversations.ListMessages(ctx, userID, chatID)
}

// persistExchange writes the user message, the assistant message, then the
// chat metadata, in that order, stopping at the first failure so metadata
// never references a message that was not written. Every failure is logged
// and suppressed: storage is best-effort and must not affect the response.
func (s *Service) persistExchange(ctx context.Context, req Request, chatID, response string) {
	if s.conversations == nil {
		return
	}

	userMsg := domain.Message{
		Content:  req.Prompt,
		Role:     domain.RoleUser,
		HasImage: req.Screenshot != "",
	}
	if err := s.conversations.AppendMessage(ctx, req.UserID, chatID, userMsg); err != nil {
		s.logger.Error("storing user message failed", "user_id", req.UserID, "chat_id", chatID, "error", err)
		return
	}

	assistantMsg := domain.Message{
		Content: response,
		Role:    domain.RoleAssistant,
	}
	if err := s.conversations.AppendMessage(ctx, req.UserID, chatID, assistantMsg); err != nil {
		s.logger.Error("storing assistant message failed", "user_id", req.UserID, "chat_id", chatID, "error", err)
		return
	}

	meta := store.Metadata{
		Title:       domain.DeriveTitle(req.Prompt),
		LastMessage: domain.DeriveLastMessage(response),
	}
	if err := s.conversations.UpsertChatMetadata(ctx, req.UserID, chatID, meta); err != nil {
		s.logger.Error("upserting chat metadata failed", "user_id", req.UserID, "chat_id", chatID, "error", err)
	}
}

// newChatID synthesizes a chat id from request time. Nanosecond precision
// keeps ids distinct for requests landing inside the same second.
func (s *Service) newChatID() string {
	return fmt.Sprintf("chat_%d", s.now().UnixNano())
}

// normalizeHistory maps caller-supplied turns onto provider roles: "user"
// stays, everything else becomes the model role. Order is preserved.
func normalizeHistory(history []Turn) []ai.Turn {
	if len(history) == 0 {
		return nil
	}
	turns := make([]ai.Turn, len(history))
	for i, t := range history {
		role := ai.RoleModel
		if t.Role == ai.RoleUser {
			role = ai.RoleUser
		}
		turns[i] = ai.Turn{Role: role, Content: t.Content}
	}
	return turns
}
