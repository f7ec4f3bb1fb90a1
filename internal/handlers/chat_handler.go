// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
	"github.com/SherazHussain546/ChattyAI/internal/dtos"
	"github.com/SherazHussain546/ChattyAI/internal/middleware"
	"github.com/SherazHussain546/ChattyAI/internal/services/chat"
)

// ChatService is the orchestration surface the handlers need; the concrete
// implementation is chat.Service, substituted with fakes in tests.
type ChatService interface {
	Exchange(ctx context.Context, req chat.Request) (*chat.Result, error)
	ListChats(ctx context.Context, userID string) ([]domain.Chat, error)
	ListMessages(ctx context.Context, userID, chatID string) ([]domain.Message, error)
}

type ChatHandler struct {
	chats ChatService
}

func NewChatHandler(chats ChatService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// HandleChat processes POST /chat: validate, generate, persist
// best-effort, respond with {response, chat_id}.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// When auth enforcement is on, callers may only act as themselves.
	if uid, ok := middleware.AuthenticatedUID(r.Context()); ok && uid != req.UserID {
		writeError(w, "user_id does not match authenticated user", http.StatusForbidden)
		return
	}

	history := make([]chat.Turn, len(req.ChatHistory))
	for i, turn := range req.ChatHistory {
		history[i] = chat.Turn{Role: turn.Role, Content: turn.Content}
	}

	result, err := h.chats.Exchange(r.Context(), chat.Request{
		Prompt:     req.Prompt,
		UserID:     req.UserID,
		ChatID:     req.ChatID,
		Screenshot: req.Screenshot,
		History:    history,
	})
	if err != nil {
		writeError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, dtos.ChatResponseDTO{
		Response: result.Response,
		ChatID:   result.ChatID,
	})
}
