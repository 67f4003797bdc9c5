// Package llm talks to hosted text-generation APIs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoAPIKey is returned by New when the provider has no credentials.
var ErrNoAPIKey = errors.New("llm: API key is required")

// ErrEmptyResponse is returned when the API answers without any text.
var ErrEmptyResponse = errors.New("llm: empty response")

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// New builds the Generator for cfg.Provider.
func New(cfg Config) (Generator, error) {
	var (
		gen Generator
		err error
	)

	switch cfg.Provider {
	case "", ProviderGemini:
		gen, err = NewGeminiClient(cfg)
	case ProviderOpenAI:
		gen, err = NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}

	if err != nil {
		return nil, err
	}
	return gen, nil
}

// APIError carries a non-200 response from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}
