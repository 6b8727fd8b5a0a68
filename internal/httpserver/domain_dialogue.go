package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dialogueHTTP "sommelier-srv/internal/dialogue/delivery/http"
	dialogueUsecase "sommelier-srv/internal/dialogue/usecase"
	"sommelier-srv/internal/middleware"
)

func (srv *HTTPServer) setupDialogueDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := dialogueUsecase.New(srv.preferenceUC, srv.historyUC, srv.llm, srv.l)

	handler := dialogueHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dialogue domain registered")
	return nil
}
