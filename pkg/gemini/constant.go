package gemini

import "time"

const (
	// BaseURL is the Generative Language API model root.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"
	// DefaultTimeout bounds a single generateContent call.
	DefaultTimeout = 60 * time.Second

	roleUser = "user"
)
