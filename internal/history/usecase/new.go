package usecase

import (
	"sommelier-srv/internal/event"
	"sommelier-srv/internal/history"
	"sommelier-srv/internal/history/repository"
	"sommelier-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	publisher event.Publisher
	l         log.Logger
}

// New - Factory function. A nil repo disables the transcript: Record becomes a no-op
// and List returns history.ErrDisabled. Reports are still published as events.
func New(repo repository.Repository, publisher event.Publisher, l log.Logger) history.UseCase {
	if publisher == nil {
		publisher = event.NewNopPublisher()
	}
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		l:         l,
	}
}
