package usecase

import (
	"context"
	"fmt"
	"strings"

	"sommelier-srv/internal/dialogue"
	"sommelier-srv/internal/event"
	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference"
)

// turn is the state one invocation of Reply carries through the chain.
type turn struct {
	userID string
	query  string
	lower  string
	prefs  model.Preferences
	name   string
}

// step is one (predicate, handler) pair. handle reports matched=false to fall through.
type step struct {
	route  string
	handle func(ctx context.Context, t turn) (reply string, matched bool, err error)
}

// chain is evaluated top to bottom, first match wins. Update detection runs before
// every canned reply so "hi, my favorite wine is Merlot" is stored, not greeted.
func (uc *implUseCase) chain() []step {
	return []step{
		{route: dialogue.RouteUpdate, handle: uc.detectUpdate},
		{route: dialogue.RouteGreeting, handle: uc.greet},
		{route: dialogue.RouteCapabilities, handle: uc.listCapabilities},
		{route: dialogue.RouteRecall, handle: uc.recall},
		{route: dialogue.RouteOffTopic, handle: uc.deflectOffTopic},
		{route: dialogue.RouteAnswer, handle: uc.answer},
	}
}

func (uc *implUseCase) detectUpdate(ctx context.Context, t turn) (string, bool, error) {
	res, err := uc.prefUC.DetectUpdate(ctx, preference.DetectUpdateInput{
		Utterance: t.query,
		Current:   t.prefs,
	})
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.detectUpdate: treated as no update: %v", err)
		return "", false, nil
	}
	if !res.Matched {
		return "", false, nil
	}

	if err := uc.prefUC.Put(ctx, preference.PutInput{
		UserID:      t.userID,
		Preferences: res.Record,
		Source:      event.SourceChat,
		Fields:      res.Fields,
	}); err != nil {
		return "", false, fmt.Errorf("store updated preferences: %w", err)
	}
	return res.Summary, true, nil
}

func (uc *implUseCase) greet(ctx context.Context, t turn) (string, bool, error) {
	if !containsAny(t.lower, greetingTokens) {
		return "", false, nil
	}
	return fmt.Sprintf(greetingTemplate, t.name), true, nil
}

func (uc *implUseCase) listCapabilities(ctx context.Context, t turn) (string, bool, error) {
	if !strings.Contains(t.lower, capabilitiesPhrase) {
		return "", false, nil
	}
	return preference.ListSettableFields(), true, nil
}

func (uc *implUseCase) recall(ctx context.Context, t turn) (string, bool, error) {
	if !containsAny(t.lower, recallPhrases) {
		return "", false, nil
	}
	return fmt.Sprintf(recallTemplate, t.name, preference.Render(t.prefs)), true, nil
}

// deflectOffTopic asks the model whether the message is in scope. A classifier failure
// counts as relevant and the turn goes on to the answer step.
func (uc *implUseCase) deflectOffTopic(ctx context.Context, t turn) (string, bool, error) {
	prompt := buildRelevancePrompt(t.query)
	verdict, err := uc.llm.Complete(ctx, prompt, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.deflectOffTopic: treated as relevant: %v", err)
		return "", false, nil
	}
	if strings.Contains(strings.ToLower(strings.TrimSpace(verdict)), "yes") {
		return "", false, nil
	}
	return deflectionMessage, true, nil
}

func (uc *implUseCase) answer(ctx context.Context, t turn) (string, bool, error) {
	reply, err := uc.llm.Complete(ctx, buildAnswerPrompt(preference.Render(t.prefs), t.query), t.query)
	if err != nil {
		return "", false, err
	}
	return reply, true, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
