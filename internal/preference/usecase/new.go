package usecase

import (
	"time"

	"sommelier-srv/internal/event"
	"sommelier-srv/internal/llm"
	"sommelier-srv/internal/preference"
	"sommelier-srv/internal/preference/repository"
	"sommelier-srv/pkg/log"
)

// DefaultStoreTimeout bounds a single store read or write.
const DefaultStoreTimeout = 5 * time.Second

type implUseCase struct {
	repo         repository.Repository
	llm          llm.Completer
	publisher    event.Publisher
	storeTimeout time.Duration
	l            log.Logger
}

// New - Factory function
func New(
	repo repository.Repository,
	completer llm.Completer,
	publisher event.Publisher,
	storeTimeout time.Duration,
	l log.Logger,
) preference.UseCase {
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}
	if publisher == nil {
		publisher = event.NewNopPublisher()
	}
	return &implUseCase{
		repo:         repo,
		llm:          completer,
		publisher:    publisher,
		storeTimeout: storeTimeout,
		l:            l,
	}
}
