package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"sommelier-srv/internal/middleware"
	preferenceHTTP "sommelier-srv/internal/preference/delivery/http"
	preferenceRedis "sommelier-srv/internal/preference/repository/redis"
	preferenceUsecase "sommelier-srv/internal/preference/usecase"
)

func (srv *HTTPServer) setupPreferenceDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := preferenceRedis.New(srv.redisClient, srv.l)

	uc := preferenceUsecase.New(repo, srv.llm, srv.publisher, srv.storeTimeout, srv.l)
	srv.preferenceUC = uc

	handler := preferenceHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Preference domain registered")
	return nil
}
