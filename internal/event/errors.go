package event

import "errors"

var (
	ErrTypeRequired   = errors.New("event: type is required")
	ErrUserIDRequired = errors.New("event: user_id is required")
)
