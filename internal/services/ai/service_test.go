// File: internal/services/ai/service_test.go
package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SherazHussain546/ChattyAI/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyGenerator fails a fixed number of times before answering.
type flakyGenerator struct {
	failuresLeft int
	textCalls    int
	imageCalls   int
}

func (g *flakyGenerator) GenerateText(ctx context.Context, prompt string, history []Turn) (string, error) {
	g.textCalls++
	if g.failuresLeft > 0 {
		g.failuresLeft--
		return "", NewProviderError("generate_text", "transient", errors.New("boom"))
	}
	return "echo: " + prompt, nil
}

func (g *flakyGenerator) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	g.imageCalls++
	if g.failuresLeft > 0 {
		g.failuresLeft--
		return "", NewProviderError("generate_from_image", "transient", errors.New("boom"))
	}
	return "described " + mimeType, nil
}

func testConfig() *Config {
	c := DefaultConfig("test-key")
	c.MaxRetries = 3
	c.RetryDelay = time.Millisecond
	return c
}

func TestServiceRetriesTextGeneration(t *testing.T) {
	provider := &flakyGenerator{failuresLeft: 2}
	svc := NewService(provider, testConfig(), services.NoOpLogger{})

	got, err := svc.GenerateText(context.Background(), "Hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "echo: Hi", got)
	assert.Equal(t, 3, provider.textCalls)
}

func TestServicePropagatesExhaustedFailure(t *testing.T) {
	provider := &flakyGenerator{failuresLeft: 10}
	svc := NewService(provider, testConfig(), services.NoOpLogger{})

	_, err := svc.GenerateText(context.Background(), "Hi", nil)
	require.Error(t, err)
	assert.Equal(t, 3, provider.textCalls)

	var aiErr *AIError
	require.True(t, errors.As(err, &aiErr))
	assert.Equal(t, ErrTypeProvider, aiErr.Type)
}

func TestServiceRetriesVisionGeneration(t *testing.T) {
	provider := &flakyGenerator{failuresLeft: 1}
	svc := NewService(provider, testConfig(), services.NoOpLogger{})

	got, err := svc.GenerateFromImage(context.Background(), "what is this", []byte{1, 2}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "described image/png", got)
	assert.Equal(t, 2, provider.imageCalls)
}
