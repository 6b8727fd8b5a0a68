package http

import (
	"sommelier-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List chat history
// @Description Return the user's past dialogue turns, newest first
// @Tags History
// @Produce json
// @Param user_id path string true "User ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} listHistoryResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/users/{user_id}/history [get]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListHistoryRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "history.delivery.http.ListHistory: processListHistoryRequest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.ListHistory: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListHistoryResp(out))
}

// @Summary Report a message
// @Description Store a user's report about a chat message and publish message.reported
// @Tags History
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body createReportReq true "Reported message"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/users/{user_id}/reports [post]
func (h *handler) CreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReportRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "history.delivery.http.CreateReport: processCreateReportRequest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	report, err := h.uc.Report(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.CreateReport: usecase Report failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportResp(report))
}
