package http

import (
	"sommelier-srv/internal/middleware"
	"sommelier-srv/internal/preference"
	"sommelier-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho preference HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

// New - Factory
func New(l log.Logger, uc preference.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
