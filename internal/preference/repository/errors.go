package repository

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToDecode = errors.New("failed to decode")
	ErrFailedToSave   = errors.New("failed to save")
)
