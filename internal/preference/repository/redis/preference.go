package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference/repository"
	pkgRedis "sommelier-srv/pkg/redis"
)

// KeyFormat addresses a user's preference document.
const KeyFormat = "users/%s/chatbot_preferences"

func key(userID string) string {
	return fmt.Sprintf(KeyFormat, userID)
}

func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) (model.Preferences, error) {
	data, err := r.redis.Get(ctx, key(opt.UserID))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return model.Preferences{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "preference.repository.redis.Get: %v", err)
		return model.Preferences{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var p model.Preferences
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		r.l.Errorf(ctx, "preference.repository.redis.Get: unmarshal error: %v", err)
		return model.Preferences{}, fmt.Errorf("%w: %v", repository.ErrFailedToDecode, err)
	}
	return p, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveOptions) error {
	data, err := json.Marshal(opt.Preferences)
	if err != nil {
		r.l.Errorf(ctx, "preference.repository.redis.Save: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}

	// Preference documents never expire.
	if err := r.redis.Set(ctx, key(opt.UserID), data, 0); err != nil {
		r.l.Errorf(ctx, "preference.repository.redis.Save: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.redis.Ping(ctx)
}
