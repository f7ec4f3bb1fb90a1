// File: internal/services/ai/service.go
package ai

import (
	"context"

	"github.com/SherazHussain546/ChattyAI/internal/services"
)

// Service wraps a Generator with retry and logging. It satisfies Generator
// itself so callers never see the difference.
type Service struct {
	provider Generator
	retry    *RetryConfig
	logger   services.Logger
}

func NewService(provider Generator, config *Config, logger services.Logger) *Service {
	return &Service{
		provider: provider,
		retry:    &RetryConfig{MaxAttempts: config.MaxRetries, Delay: config.RetryDelay},
		logger:   logger,
	}
}

func (s *Service) GenerateText(ctx context.Context, prompt string, history []Turn) (string, error) {
	var result string
	err := RetryWithBackoff(ctx, s.retry, func(ctx context.Context) error {
		text, genErr := s.provider.GenerateText(ctx, prompt, history)
		if genErr != nil {
			s.logger.Warn("text generation attempt failed", "error", genErr)
			return genErr
		}
		result = text
		return nil
	})
	if err != nil {
		s.logger.Error("text generation failed", "history_turns", len(history), "error", err)
		return "", err
	}
	return result, nil
}

func (s *Service) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	var result string
	err := RetryWithBackoff(ctx, s.retry, func(ctx context.Context) error {
		text, genErr := s.provider.GenerateFromImage(ctx, prompt, image, mimeType)
		if genErr != nil {
			s.logger.Warn("vision generation attempt failed", "error", genErr)
			return genErr
		}
		result = text
		return nil
	})
	if err != nil {
		s.logger.Error("vision generation failed", "mime_type", mimeType, "image_bytes", len(image), "error", err)
		return "", err
	}
	return result, nil
}
