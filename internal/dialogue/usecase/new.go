package usecase

import (
	"sommelier-srv/internal/dialogue"
	"sommelier-srv/internal/history"
	"sommelier-srv/internal/llm"
	"sommelier-srv/internal/preference"
	"sommelier-srv/pkg/log"
)

type implUseCase struct {
	prefUC    preference.UseCase
	historyUC history.UseCase
	llm       llm.Completer
	l         log.Logger
	steps     []step
}

// New - Factory function. historyUC may be nil, turns are then not recorded.
func New(prefUC preference.UseCase, historyUC history.UseCase, completer llm.Completer, l log.Logger) dialogue.UseCase {
	uc := &implUseCase{
		prefUC:    prefUC,
		historyUC: historyUC,
		llm:       completer,
		l:         l,
	}
	uc.steps = uc.chain()
	return uc
}
