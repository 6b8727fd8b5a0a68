package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sommelier-srv/internal/event"
	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference"
	"sommelier-srv/internal/preference/repository"
)

// Get returns the stored record or the default record. A missing record is not an error.
func (uc *implUseCase) Get(ctx context.Context, userID string) (model.Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return model.Preferences{}, preference.ErrUserIDRequired
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	p, err := uc.repo.Get(ctx, repository.GetOptions{UserID: userID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Preferences{}, nil
		}
		uc.l.Errorf(ctx, "preference.usecase.Get: repo.Get failed: %v", err)
		return model.Preferences{}, fmt.Errorf("%w: %v", preference.ErrStoreUnavailable, err)
	}
	return p, nil
}

// Put overwrites the whole record and publishes preference.updated.
func (uc *implUseCase) Put(ctx context.Context, input preference.PutInput) error {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return preference.ErrUserIDRequired
	}

	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	if err := uc.repo.Save(storeCtx, repository.SaveOptions{UserID: userID, Preferences: input.Preferences}); err != nil {
		uc.l.Errorf(ctx, "preference.usecase.Put: repo.Save failed: %v", err)
		return fmt.Errorf("%w: %v", preference.ErrStoreUnavailable, err)
	}
	uc.l.Infof(ctx, "preference.usecase.Put: updated preferences of %s (%s): %v", userID, input.Source, input.Fields)

	if err := uc.publisher.Publish(ctx, event.Event{
		Type:   event.TypePreferenceUpdated,
		UserID: userID,
		Payload: event.PreferenceUpdatedPayload{
			Source:      input.Source,
			Fields:      input.Fields,
			Preferences: input.Preferences,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "preference.usecase.Put: publish event failed: %v", err)
	}
	return nil
}
