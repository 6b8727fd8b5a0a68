package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sommelier-srv/internal/dialogue"
	"sommelier-srv/internal/history"
	"sommelier-srv/internal/llm"
)

func (uc *implUseCase) Reply(ctx context.Context, input dialogue.ReplyInput) (dialogue.ReplyOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return dialogue.ReplyOutput{}, dialogue.ErrQueryRequired
	}
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return dialogue.ReplyOutput{}, dialogue.ErrUserIDRequired
	}

	out := uc.run(ctx, userID, query)
	uc.record(ctx, userID, query, out)
	return out, nil
}

func (uc *implUseCase) run(ctx context.Context, userID, query string) dialogue.ReplyOutput {
	prefs, err := uc.prefUC.Get(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.Reply: prefUC.Get failed: %v", err)
		return degraded(dialogue.RouteError, unexpectedErrorMessage)
	}

	t := turn{
		userID: userID,
		query:  query,
		lower:  strings.ToLower(query),
		prefs:  prefs,
		name:   prefs.Name,
	}
	if t.name == "" {
		t.name = defaultName
	}

	for _, s := range uc.steps {
		reply, matched, err := s.handle(ctx, t)
		if err != nil {
			if errors.Is(err, llm.ErrProvider) {
				uc.l.Errorf(ctx, "dialogue.usecase.Reply: step %s provider failure: %v", s.route, err)
				return degraded(s.route, fmt.Sprintf(providerErrorTemplate, err))
			}
			uc.l.Errorf(ctx, "dialogue.usecase.Reply: step %s failed: %v", s.route, err)
			return degraded(s.route, unexpectedErrorMessage)
		}
		if matched {
			uc.l.Debugf(ctx, "dialogue.usecase.Reply: routed to %s", s.route)
			return dialogue.ReplyOutput{Reply: reply, Route: s.route}
		}
	}

	// The answer step always matches; reaching here means the chain was misconfigured.
	uc.l.Errorf(ctx, "dialogue.usecase.Reply: no step matched")
	return degraded(dialogue.RouteError, unexpectedErrorMessage)
}

func (uc *implUseCase) record(ctx context.Context, userID, query string, out dialogue.ReplyOutput) {
	if uc.historyUC == nil {
		return
	}
	if err := uc.historyUC.Record(ctx, history.RecordInput{
		UserID:   userID,
		Query:    query,
		Reply:    out.Reply,
		Route:    out.Route,
		Degraded: out.Degraded,
	}); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.Reply: historyUC.Record failed: %v", err)
	}
}

func degraded(route, reply string) dialogue.ReplyOutput {
	return dialogue.ReplyOutput{Reply: reply, Route: route, Degraded: true}
}
