package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToList    = errors.New("failed to list")
	ErrFailedToCount   = errors.New("failed to count")
	ErrFailedToMigrate = errors.New("failed to migrate")
)
