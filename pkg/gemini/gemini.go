package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Complete sends a system instruction plus a single user turn and returns the generated text.
func (g *geminiImpl) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)

	req := Request{
		Contents: []Content{
			{
				Role:  roleUser,
				Parts: []Part{{Text: userMessage}},
			},
		},
	}
	if systemPrompt != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: systemPrompt}}}
	}

	body, statusCode, err := g.httpClient.Post(ctx, url, req, map[string]string{"x-goog-api-key": g.apiKey})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if statusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrProvider, statusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrProvider, statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrMalformedResponse)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: empty text", ErrMalformedResponse)
	}
	return b.String(), nil
}
