package gemini

import (
	"context"

	pkghttp "sommelier-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: cfg.Timeout}),
	}, nil
}
