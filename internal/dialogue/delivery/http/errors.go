package http

import (
	"errors"

	"sommelier-srv/internal/dialogue"
)

var errMalformedBody = errors.New("malformed request body")

const (
	msgQueryRequired  = "Query cannot be empty."
	msgUserIDRequired = "User ID is required to fetch preferences."
	msgUnexpected     = "An unexpected error occurred: "
)

// mapError turns an error into the text of the {"error": ...} body.
func (h *handler) mapError(err error) string {
	switch {
	case errors.Is(err, dialogue.ErrQueryRequired):
		return msgQueryRequired
	case errors.Is(err, dialogue.ErrUserIDRequired):
		return msgUserIDRequired
	}
	return msgUnexpected + err.Error()
}
