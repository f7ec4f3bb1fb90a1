// File: internal/services/ai/config.go
package ai

import "time"

// Config holds the Gemini provider settings.
type Config struct {
	APIKey string

	// TextModel answers plain chat prompts; VisionModel answers prompts
	// carrying an image. Both must be vision- or text-capable Gemini ids.
	TextModel   string
	VisionModel string

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return NewConfigError("GEMINI_API_KEY is required")
	}
	if c.TextModel == "" {
		return NewConfigError("text model name is required")
	}
	if c.VisionModel == "" {
		return NewConfigError("vision model name is required")
	}
	if c.Timeout <= 0 {
		return NewConfigError("timeout must be positive")
	}
	if c.MaxRetries < 1 {
		return NewConfigError("max retries must be at least 1")
	}
	return nil
}

// DefaultConfig returns production defaults for the given API key.
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey:      apiKey,
		TextModel:   "gemini-1.5-flash",
		VisionModel: "gemini-1.5-flash",
		Timeout:     2 * time.Minute,
		MaxRetries:  3,
		RetryDelay:  2 * time.Second,
	}
}
