package http

import (
	"errors"
	"strings"

	"sommelier-srv/internal/preference"
	pkgErrors "sommelier-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetPreferencesRequest(c *gin.Context) (string, error) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		return "", preference.ErrUserIDRequired
	}
	return userID, nil
}

func (h *handler) processPutPreferencesRequest(c *gin.Context) (putPreferencesReq, error) {
	req := putPreferencesReq{UserID: strings.TrimSpace(c.Param("user_id"))}
	if req.UserID == "" {
		return req, preference.ErrUserIDRequired
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return req, errInvalidBody
	}

	var vErrs pkgErrors.ValidationErrors
	for key, value := range body {
		if key == nameKey {
			name, ok := value.(string)
			if !ok && value != nil {
				vErrs.Add(key, "must be a string")
				continue
			}
			req.Preferences.Name = strings.TrimSpace(name)
			continue
		}
		if err := preference.SetValue(&req.Preferences, key, value); err != nil {
			switch {
			case errors.Is(err, preference.ErrUnknownField):
				vErrs.Add(key, "unknown preference")
			default:
				vErrs.Add(key, err.Error())
			}
		}
	}
	if vErrs.HasErrors() {
		return req, vErrs
	}

	for _, f := range preference.Fields {
		if _, ok := body[f.Key]; ok {
			req.Fields = append(req.Fields, f.Key)
		}
	}
	return req, nil
}
