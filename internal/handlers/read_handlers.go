// File: internal/handlers/read_handlers.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SherazHussain546/ChattyAI/internal/dtos"
	"github.com/SherazHussain546/ChattyAI/internal/middleware"
)

// GetUserChats handles GET /chats/{user_id}: all chats for a user,
// newest-updated first.
func (h *ChatHandler) GetUserChats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	if uid, ok := middleware.AuthenticatedUID(r.Context()); ok && uid != userID {
		writeError(w, "user_id does not match authenticated user", http.StatusForbidden)
		return
	}

	chats, err := h.chats.ListChats(r.Context(), userID)
	if err != nil {
		writeError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, dtos.ChatListResponseDTO{Chats: dtos.FromChatSlice(chats)})
}

// GetChatMessages handles GET /chats/{user_id}/{chat_id}: all messages for
// a chat, oldest first, timestamps resolved to ISO-8601 strings.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	chatID := vars["chat_id"]

	if uid, ok := middleware.AuthenticatedUID(r.Context()); ok && uid != userID {
		writeError(w, "user_id does not match authenticated user", http.StatusForbidden)
		return
	}

	messages, err := h.chats.ListMessages(r.Context(), userID, chatID)
	if err != nil {
		writeError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, dtos.MessageListResponseDTO{Messages: dtos.FromMessageSlice(messages)})
}
