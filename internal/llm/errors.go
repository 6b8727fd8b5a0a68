package llm

import "errors"

var (
	// ErrProvider - provider unreachable, rejected the request or timed out
	ErrProvider = errors.New("llm: provider error")

	// ErrMalformedResponse - provider answered without usable content
	ErrMalformedResponse = errors.New("llm: malformed response")

	// ErrUnknownProvider - llm.provider is not one of the supported names
	ErrUnknownProvider = errors.New("llm: unknown provider")
)
