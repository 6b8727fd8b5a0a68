package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"
)

// IOpenAI sends a system instruction plus one user turn to a chat completion model.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// NewOpenAI creates a new chat completion client. Model defaults to DefaultModel if empty.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openaiImpl{
		client:      goopenai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}
