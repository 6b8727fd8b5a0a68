package http

import (
	"sommelier-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get user preferences
// @Description Return the stored preference record (or the default one) and its rendered text
// @Tags Preferences
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} preferencesResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/users/{user_id}/preferences [get]
func (h *handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.processGetPreferencesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "preference.delivery.http.GetPreferences: processGetPreferencesRequest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	p, err := h.uc.Get(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.GetPreferences: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreferencesResp(userID, p))
}

// @Summary Replace user preferences
// @Description Overwrite the whole preference record. Only recognized keys are accepted; omitted keys reset to their default.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body preferenceValues true "Preference record"
// @Success 200 {object} preferencesResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/users/{user_id}/preferences [put]
func (h *handler) PutPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPutPreferencesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "preference.delivery.http.PutPreferences: processPutPreferencesRequest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Put(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.PutPreferences: usecase Put failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreferencesResp(req.UserID, req.Preferences))
}
