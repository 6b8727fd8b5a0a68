package http

import (
	"context"
	"net/http"
)

// IClient is a small JSON-over-HTTP client. Every call is attempted exactly once.
// Implementations are safe for concurrent use.
type IClient interface {
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}
