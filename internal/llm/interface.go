package llm

import "context"

// Completer sends one system instruction and one user turn to a language model
// and returns the generated text. One call, no retries.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
