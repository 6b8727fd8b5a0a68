package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Welcome
// @Description Liveness text of the chat API
// @Tags Chat
// @Produce json
// @Success 200 {object} welcomeResp
// @Router / [get]
func (h *handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, welcomeResp{Message: welcomeMessage})
}

// @Summary Chat with the sommelier
// @Description Route one user utterance through the assistant. Every outcome is answered with HTTP 200:
// @Description either {"response": ...} or {"error": ...}.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat turn"
// @Success 200 {object} chatResp
// @Router /chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dialogue.delivery.http.Chat: processChatRequest failed: %v", err)
		c.JSON(http.StatusOK, h.newErrorResp(err))
		return
	}

	o, err := h.uc.Reply(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "dialogue.delivery.http.Chat: usecase Reply failed: %v", err)
		c.JSON(http.StatusOK, h.newErrorResp(err))
		return
	}

	h.l.Infof(ctx, "dialogue.delivery.http.Chat: user %s routed to %s", req.UserID, o.Route)
	c.JSON(http.StatusOK, h.newChatResp(o))
}
