// File: internal/services/store/decode.go
package store

import (
	"time"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
)

// chatFromData shapes a chat document into the domain entity. Documents
// written by older clients may miss fields; absent values stay zero.
func chatFromData(id string, data map[string]interface{}) domain.Chat {
	return domain.Chat{
		ID:          id,
		Title:       stringField(data, "title"),
		LastMessage: stringField(data, "last_message"),
		UpdatedAt:   timeField(data, "updated_at"),
	}
}

// messageFromData shapes a message document into the domain entity. A
// timestamp the server has not committed yet (absent or zero) resolves to
// now, so callers always see a concrete point in time.
func messageFromData(id string, data map[string]interface{}, now func() time.Time) domain.Message {
	ts := timeField(data, "timestamp")
	if ts.IsZero() {
		ts = now().UTC()
	}
	return domain.Message{
		ID:        id,
		Content:   stringField(data, "content"),
		Role:      stringField(data, "role"),
		Timestamp: ts,
		HasImage:  boolField(data, "has_image"),
	}
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func boolField(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

func timeField(data map[string]interface{}, key string) time.Time {
	if v, ok := data[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}
