package openai

import "time"

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4"
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)
