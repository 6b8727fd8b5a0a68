package history

import "errors"

var (
	ErrDisabled       = errors.New("history: transcript storage is disabled")
	ErrUserIDRequired = errors.New("history: user id is required")
	ErrTextRequired   = errors.New("history: report text is required")
	ErrInvalidSender  = errors.New("history: sender must be user or bot")
	ErrInvalidPaging  = errors.New("history: invalid page or limit")
	ErrStoreFailed    = errors.New("history: store failed")
)
