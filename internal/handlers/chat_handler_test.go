// File: internal/handlers/chat_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
	"github.com/SherazHussain546/ChattyAI/internal/middleware"
	"github.com/SherazHussain546/ChattyAI/internal/services/chat"
	"github.com/SherazHussain546/ChattyAI/internal/services/store"
)

// fakeChatService is a programmable ChatService double.
type fakeChatService struct {
	exchangeResult *chat.Result
	exchangeErr    error
	lastRequest    chat.Request

	chats    []domain.Chat
	chatsErr error

	messages    []domain.Message
	messagesErr error
}

func (f *fakeChatService) Exchange(ctx context.Context, req chat.Request) (*chat.Result, error) {
	f.lastRequest = req
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return f.exchangeResult, nil
}

func (f *fakeChatService) ListChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	return f.chats, f.chatsErr
}

func (f *fakeChatService) ListMessages(ctx context.Context, userID, chatID string) ([]domain.Message, error) {
	return f.messages, f.messagesErr
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	return rec
}

func TestHandleChatSuccess(t *testing.T) {
	svc := &fakeChatService{exchangeResult: &chat.Result{Response: "Hello!", ChatID: "chat_42"}}
	h := NewChatHandler(svc)

	rec := postChat(t, h, `{"prompt":"Hi","user_id":"u1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hello!", body["response"])
	assert.Equal(t, "chat_42", body["chat_id"])
}

func TestHandleChatForwardsHistoryAndScreenshot(t *testing.T) {
	svc := &fakeChatService{exchangeResult: &chat.Result{Response: "ok", ChatID: "c1"}}
	h := NewChatHandler(svc)

	rec := postChat(t, h, `{
		"prompt": "next",
		"user_id": "u1",
		"chat_id": "c1",
		"screenshot": "aGk=",
		"chat_history": [
			{"role": "user", "content": "Hi"},
			{"role": "assistant", "content": "Hello!"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", svc.lastRequest.ChatID)
	assert.Equal(t, "aGk=", svc.lastRequest.Screenshot)
	require.Len(t, svc.lastRequest.History, 2)
	assert.Equal(t, chat.Turn{Role: "user", Content: "Hi"}, svc.lastRequest.History[0])
	assert.Equal(t, chat.Turn{Role: "assistant", Content: "Hello!"}, svc.lastRequest.History[1])
}

func TestHandleChatRejectsMalformedBody(t *testing.T) {
	h := NewChatHandler(&fakeChatService{})

	rec := postChat(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChatRejectsMissingFields(t *testing.T) {
	h := NewChatHandler(&fakeChatService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{"user_id":"u1"}`},
		{"blank prompt", `{"prompt":"  ","user_id":"u1"}`},
		{"missing user_id", `{"prompt":"Hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["detail"])
		})
	}
}

func TestHandleChatAIUnavailable(t *testing.T) {
	svc := &fakeChatService{exchangeErr: chat.ErrAIUnavailable}
	h := NewChatHandler(svc)

	rec := postChat(t, h, `{"prompt":"Hi","user_id":"u1"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, chat.ErrAIUnavailable.Error(), body["detail"])
}

func TestHandleChatProviderFailureCarriesDetail(t *testing.T) {
	svc := &fakeChatService{exchangeErr: errors.New("quota exceeded")}
	h := NewChatHandler(svc)

	rec := postChat(t, h, `{"prompt":"Hi","user_id":"u1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "quota exceeded")
}

func TestHandleChatRejectsMismatchedAuthenticatedUser(t *testing.T) {
	svc := &fakeChatService{exchangeResult: &chat.Result{Response: "ok", ChatID: "c1"}}
	h := NewChatHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"prompt":"Hi","user_id":"someone-else"}`))
	ctx := context.WithValue(req.Context(), middleware.AuthUIDKey, "u1")
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleChatAllowsMatchingAuthenticatedUser(t *testing.T) {
	svc := &fakeChatService{exchangeResult: &chat.Result{Response: "ok", ChatID: "c1"}}
	h := NewChatHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"prompt":"Hi","user_id":"u1"}`))
	ctx := context.WithValue(req.Context(), middleware.AuthUIDKey, "u1")
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusForErrorMapsStoreUnavailable(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusForError(store.ErrUnavailable))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("other")))
}
