package http

import (
	"errors"
	"net/http"

	"sommelier-srv/internal/preference"
	pkgErrors "sommelier-srv/pkg/errors"
)

var (
	errUserIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "User ID is required")
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object")
	errStoreUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Preference store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrUserIDRequired):
		return errUserIDRequired
	case errors.Is(err, preference.ErrStoreUnavailable):
		return errStoreUnavailable
	}
	return err
}
