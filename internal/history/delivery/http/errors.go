package http

import (
	"errors"
	"net/http"

	"sommelier-srv/internal/history"
	pkgErrors "sommelier-srv/pkg/errors"
)

var (
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errUserIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "User ID is required")
	errTextRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Report text is required")
	errInvalidSender  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Sender must be user or bot")
	errInvalidPaging  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid limit or offset")
	errDisabled       = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Chat history is not enabled")
	errStoreFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to access chat history")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, history.ErrUserIDRequired):
		return errUserIDRequired
	case errors.Is(err, history.ErrTextRequired):
		return errTextRequired
	case errors.Is(err, history.ErrInvalidSender):
		return errInvalidSender
	case errors.Is(err, history.ErrInvalidPaging):
		return errInvalidPaging
	case errors.Is(err, history.ErrDisabled):
		return errDisabled
	case errors.Is(err, history.ErrStoreFailed):
		return errStoreFailed
	}
	return err
}
