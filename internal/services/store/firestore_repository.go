// File: internal/services/store/firestore_repository.go
package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/SherazHussain546/ChattyAI/internal/domain"
	"github.com/SherazHussain546/ChattyAI/internal/services"
)

// firestoreStore implements ConversationStore on Cloud Firestore.
type firestoreStore struct {
	client  *firestore.Client
	timeout time.Duration
	logger  services.Logger
	now     func() time.Time
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client, config *Config, logger services.Logger) ConversationStore {
	return &firestoreStore{
		client:  client,
		timeout: config.Timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *firestoreStore) chatRef(userID, chatID string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(userID).Collection("chats").Doc(chatID)
}

func (s *firestoreStore) AppendMessage(ctx context.Context, userID, chatID string, msg domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, _, err := s.chatRef(userID, chatID).Collection("messages").Add(ctx, map[string]interface{}{
		"content":   msg.Content,
		"role":      msg.Role,
		"timestamp": firestore.ServerTimestamp,
		"has_image": msg.HasImage,
	})
	if err != nil {
		return NewOperationError("appending message", err)
	}
	return nil
}

func (s *firestoreStore) UpsertChatMetadata(ctx context.Context, userID, chatID string, meta Metadata) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.chatRef(userID, chatID).Set(ctx, map[string]interface{}{
		"title":        meta.Title,
		"last_message": meta.LastMessage,
		"updated_at":   firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return NewOperationError("upserting chat metadata", err)
	}
	return nil
}

func (s *firestoreStore) ListChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	iter := s.client.Collection("users").Doc(userID).Collection("chats").
		OrderBy("updated_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	chats := make([]domain.Chat, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, NewOperationError("listing chats", err)
		}
		chats = append(chats, chatFromData(doc.Ref.ID, doc.Data()))
	}
	return chats, nil
}

func (s *firestoreStore) ListMessages(ctx context.Context, userID, chatID string) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	iter := s.chatRef(userID, chatID).Collection("messages").
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	messages := make([]domain.Message, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, NewOperationError("listing messages", err)
		}
		messages = append(messages, messageFromData(doc.Ref.ID, doc.Data(), s.now))
	}
	return messages, nil
}
