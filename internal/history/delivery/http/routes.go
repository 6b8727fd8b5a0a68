package http

import (
	"sommelier-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/users/:user_id")
	{
		api.GET("/history", h.ListHistory)
		api.POST("/reports", h.CreateReport)
	}
}
