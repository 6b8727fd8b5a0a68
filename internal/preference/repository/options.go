package repository

import "sommelier-srv/internal/model"

type GetOptions struct {
	UserID string
}

type SaveOptions struct {
	UserID      string
	Preferences model.Preferences
}
