// File: internal/services/ai/gemini_provider.go
package ai

import (
	"context"

	"google.golang.org/genai"
)

// GeminiProvider implements Generator against the hosted Gemini API.
type GeminiProvider struct {
	config *Config
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, NewProviderError("init", "failed to create Gemini client", err)
	}

	return &GeminiProvider{config: config, client: client}, nil
}

// GenerateText starts a chat session seeded with the supplied history and
// submits the prompt as the newest user turn. The provider keys its running
// context off the replayed history, so order must be preserved.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, history []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	seed := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleModel)
		if turn.Role == RoleUser {
			role = genai.RoleUser
		}
		seed = append(seed, genai.NewContentFromText(turn.Content, role))
	}

	session, err := p.client.Chats.Create(ctx, p.config.TextModel, nil, seed)
	if err != nil {
		return "", NewProviderError("generate_text", "failed to start chat session", err)
	}

	resp, err := session.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", NewProviderError("generate_text", "failed to generate response", err)
	}

	text := resp.Text()
	if text == "" {
		return "", &AIError{Type: ErrTypeProvider, Operation: "generate_text", Message: "empty model response"}
	}
	return text, nil
}

// GenerateFromImage submits the prompt together with the raw image bytes.
// History is intentionally not part of this call.
func (p *GeminiProvider) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.VisionModel, contents, nil)
	if err != nil {
		return "", NewProviderError("generate_from_image", "failed to generate response", err)
	}

	text := resp.Text()
	if text == "" {
		return "", &AIError{Type: ErrTypeProvider, Operation: "generate_from_image", Message: "empty model response"}
	}
	return text, nil
}
