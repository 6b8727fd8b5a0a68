package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	historyHTTP "sommelier-srv/internal/history/delivery/http"
	"sommelier-srv/internal/history/repository"
	historyPostgre "sommelier-srv/internal/history/repository/postgre"
	historyUsecase "sommelier-srv/internal/history/usecase"
	"sommelier-srv/internal/middleware"
)

func (srv *HTTPServer) setupHistoryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var repo repository.Repository
	if srv.postgresDB != nil {
		repo = historyPostgre.New(srv.postgresDB, srv.postgresSchema, srv.l)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
	} else {
		srv.l.Warnf(ctx, "PostgreSQL disabled: chat history is not recorded")
	}

	uc := historyUsecase.New(repo, srv.publisher, srv.l)
	srv.historyUC = uc

	handler := historyHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "History domain registered")
	return nil
}
