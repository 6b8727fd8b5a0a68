package llm

import (
	"fmt"
	"time"

	"sommelier-srv/pkg/gemini"
	"sommelier-srv/pkg/openai"
)

// Config selects and configures one provider.
type Config struct {
	Provider string
	Model    string
	Timeout  time.Duration

	OpenAIAPIKey  string
	OpenAIBaseURL string

	GeminiAPIKey  string
	GeminiBaseURL string
}

// New builds the Completer for cfg.Provider.
func New(cfg Config) (Completer, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		c, err := openai.NewOpenAI(openai.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return FromOpenAI(c), nil
	case ProviderGemini:
		c, err := gemini.NewGemini(gemini.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return FromGemini(c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
