// File: internal/services/store/decode_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
)

func TestChatFromData(t *testing.T) {
	updated := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	chat := chatFromData("c1", map[string]interface{}{
		"title":        "Capital of Sweden",
		"last_message": "Stockholm is the capital of Sweden.",
		"updated_at":   updated,
	})

	assert.Equal(t, domain.Chat{
		ID:          "c1",
		Title:       "Capital of Sweden",
		LastMessage: "Stockholm is the capital of Sweden.",
		UpdatedAt:   updated,
	}, chat)
}

func TestChatFromDataMissingFields(t *testing.T) {
	chat := chatFromData("c2", map[string]interface{}{})
	assert.Equal(t, "c2", chat.ID)
	assert.Empty(t, chat.Title)
	assert.True(t, chat.UpdatedAt.IsZero())
}

func TestMessageFromData(t *testing.T) {
	committed := time.Date(2025, 3, 1, 12, 0, 5, 0, time.UTC)
	msg := messageFromData("m1", map[string]interface{}{
		"content":   "Hi",
		"role":      domain.RoleUser,
		"timestamp": committed,
		"has_image": true,
	}, time.Now)

	assert.Equal(t, committed, msg.Timestamp)
	assert.Equal(t, "Hi", msg.Content)
	assert.Equal(t, domain.RoleUser, msg.Role)
	assert.True(t, msg.HasImage)
}

func TestMessageFromDataResolvesPendingTimestampToNow(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	now := func() time.Time { return frozen }

	// Absent timestamp: the server has not committed it yet.
	msg := messageFromData("m2", map[string]interface{}{
		"content": "pending",
		"role":    domain.RoleAssistant,
	}, now)
	assert.Equal(t, frozen, msg.Timestamp)

	// Zero timestamp resolves the same way.
	msg = messageFromData("m3", map[string]interface{}{
		"content":   "pending",
		"role":      domain.RoleAssistant,
		"timestamp": time.Time{},
	}, now)
	assert.Equal(t, frozen, msg.Timestamp)
}
