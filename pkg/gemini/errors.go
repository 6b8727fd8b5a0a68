package gemini

import "errors"

var (
	// ErrAPIKeyRequired is returned by NewGemini when no API key is configured.
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	// ErrProvider wraps transport failures, timeouts and non-200 responses.
	ErrProvider = errors.New("gemini: provider error")
	// ErrMalformedResponse is returned when the response carries no text.
	ErrMalformedResponse = errors.New("gemini: malformed response")
)
