package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sommelier-srv/internal/preference"
)

// DetectUpdate - Flow: prompt → LLM → strict JSON parse → whitelist merge into a copy of current
func (uc *implUseCase) DetectUpdate(ctx context.Context, input preference.DetectUpdateInput) (preference.UpdateResult, error) {
	raw, err := uc.llm.Complete(ctx, uc.buildExtractPrompt(input.Current, input.Utterance), input.Utterance)
	if err != nil {
		return preference.UpdateResult{}, fmt.Errorf("%w: %w", preference.ErrExtractorUnavailable, err)
	}

	pairs, err := parseUpdate(raw)
	if err != nil {
		return preference.UpdateResult{}, fmt.Errorf("%w: %v", preference.ErrMalformedUpdate, err)
	}
	if len(pairs) == 0 {
		return preference.UpdateResult{}, nil
	}

	record := input.Current
	fields := make([]string, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, kv := range pairs {
		if err := preference.SetValue(&record, kv.key, kv.value); err != nil {
			uc.l.Warnf(ctx, "preference.usecase.DetectUpdate: dropping %q: %v", kv.key, err)
			continue
		}
		if !seen[kv.key] {
			seen[kv.key] = true
			fields = append(fields, kv.key)
		}
	}
	if len(fields) == 0 {
		return preference.UpdateResult{}, nil
	}

	return preference.UpdateResult{
		Matched: true,
		Record:  record,
		Summary: preference.UpdateSummary(fields),
		Fields:  fields,
	}, nil
}

type keyValue struct {
	key   string
	value any
}

// parseUpdate decodes a single JSON object, keeping the key order of the reply.
// A surrounding markdown code fence is tolerated.
func parseUpdate(raw string) ([]keyValue, error) {
	dec := json.NewDecoder(strings.NewReader(stripCodeFence(raw)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var pairs []keyValue
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		pairs = append(pairs, keyValue{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return pairs, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
