package llm

import (
	"context"
	"errors"
	"fmt"

	"sommelier-srv/pkg/gemini"
	"sommelier-srv/pkg/openai"
)

// adapter maps a client's own sentinel errors onto the llm contract.
type adapter struct {
	name         string
	complete     func(ctx context.Context, systemPrompt, userMessage string) (string, error)
	providerErr  error
	malformedErr error
}

// FromOpenAI exposes an OpenAI client as a Completer.
func FromOpenAI(c openai.IOpenAI) Completer {
	return &adapter{
		name:         ProviderOpenAI,
		complete:     c.Complete,
		providerErr:  openai.ErrProvider,
		malformedErr: openai.ErrMalformedResponse,
	}
}

// FromGemini exposes a Gemini client as a Completer.
func FromGemini(c gemini.IGemini) Completer {
	return &adapter{
		name:         ProviderGemini,
		complete:     c.Complete,
		providerErr:  gemini.ErrProvider,
		malformedErr: gemini.ErrMalformedResponse,
	}
}

func (a *adapter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	out, err := a.complete(ctx, systemPrompt, userMessage)
	if err == nil {
		return out, nil
	}
	switch {
	case errors.Is(err, a.malformedErr):
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	case errors.Is(err, a.providerErr), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	default:
		return "", fmt.Errorf("%w: %s: %v", ErrProvider, a.name, err)
	}
}
