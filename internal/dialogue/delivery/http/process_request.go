package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h *handler) processChatRequest(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return req, nil
}
