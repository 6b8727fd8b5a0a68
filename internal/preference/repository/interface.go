package repository

import (
	"context"

	"sommelier-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Get returns ErrNotFound when the user has no stored record.
	Get(ctx context.Context, opt GetOptions) (model.Preferences, error)
	Save(ctx context.Context, opt SaveOptions) error
	Ping(ctx context.Context) error
}
