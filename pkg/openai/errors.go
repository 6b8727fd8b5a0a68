package openai

import "errors"

var (
	// ErrAPIKeyRequired is returned by NewOpenAI when no API key is configured.
	ErrAPIKeyRequired = errors.New("openai: API key is required")
	// ErrProvider wraps API errors, transport failures and timeouts.
	ErrProvider = errors.New("openai: provider error")
	// ErrMalformedResponse is returned when the completion carries no content.
	ErrMalformedResponse = errors.New("openai: malformed response")
)
