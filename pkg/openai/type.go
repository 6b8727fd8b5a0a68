package openai

import (
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds the configuration for the chat completion client.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// openaiImpl implements IOpenAI with github.com/sashabaranov/go-openai.
type openaiImpl struct {
	client      *goopenai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}
