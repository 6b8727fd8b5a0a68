package http

import (
	"strings"

	"sommelier-srv/internal/history"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListHistoryRequest(c *gin.Context) (listHistoryReq, error) {
	var req listHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, history.ErrInvalidPaging
	}
	req.UserID = strings.TrimSpace(c.Param("user_id"))
	if req.UserID == "" {
		return req, history.ErrUserIDRequired
	}
	return req, nil
}

func (h *handler) processCreateReportRequest(c *gin.Context) (createReportReq, error) {
	var req createReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.UserID = strings.TrimSpace(c.Param("user_id"))
	if req.UserID == "" {
		return req, history.ErrUserIDRequired
	}
	return req, nil
}
