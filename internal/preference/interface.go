package preference

import (
	"context"

	"sommelier-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the stored record, or the default record when the user has none.
	Get(ctx context.Context, userID string) (model.Preferences, error)
	// Put overwrites the stored record.
	Put(ctx context.Context, input PutInput) error
	// DetectUpdate asks the language model whether the utterance assigns preferences
	// and merges them into a copy of the current record.
	DetectUpdate(ctx context.Context, input DetectUpdateInput) (UpdateResult, error)
}
