package dialogue

import "errors"

var (
	ErrQueryRequired  = errors.New("dialogue: query is required")
	ErrUserIDRequired = errors.New("dialogue: user id is required")
)
