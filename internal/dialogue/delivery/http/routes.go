package http

import (
	"sommelier-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the chat endpoints at the root, outside the versioned API.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/", h.Welcome)
	r.POST("/chat", h.Chat)
}
