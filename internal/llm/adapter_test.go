package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sommelier-srv/pkg/gemini"
	"sommelier-srv/pkg/openai"
)

type fakeOpenAI struct {
	out string
	err error
}

func (f fakeOpenAI) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return f.out, f.err
}

type fakeGemini struct {
	err error
}

func (f fakeGemini) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return "", f.err
}

func TestAdapter_PassesThroughContent(t *testing.T) {
	c := FromOpenAI(fakeOpenAI{out: "Try a Riesling."})
	got, err := c.Complete(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Try a Riesling." {
		t.Errorf("expected %q, got %q", "Try a Riesling.", got)
	}
}

func TestAdapter_MapsErrors(t *testing.T) {
	tests := []struct {
		name string
		c    Completer
		want error
	}{
		{"openai provider", FromOpenAI(fakeOpenAI{err: fmt.Errorf("%w: status 500", openai.ErrProvider)}), ErrProvider},
		{"openai malformed", FromOpenAI(fakeOpenAI{err: fmt.Errorf("%w: no choices", openai.ErrMalformedResponse)}), ErrMalformedResponse},
		{"gemini provider", FromGemini(fakeGemini{err: gemini.ErrProvider}), ErrProvider},
		{"gemini malformed", FromGemini(fakeGemini{err: gemini.ErrMalformedResponse}), ErrMalformedResponse},
		{"unclassified", FromOpenAI(fakeOpenAI{err: errors.New("boom")}), ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Complete(context.Background(), "", "hi")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New(Config{Provider: "llama"}); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestNew_MissingKey(t *testing.T) {
	if _, err := New(Config{Provider: ProviderGemini}); !errors.Is(err, gemini.ErrAPIKeyRequired) {
		t.Fatalf("expected gemini.ErrAPIKeyRequired, got %v", err)
	}
	if _, err := New(Config{Provider: ProviderOpenAI}); !errors.Is(err, openai.ErrAPIKeyRequired) {
		t.Fatalf("expected openai.ErrAPIKeyRequired, got %v", err)
	}
}
