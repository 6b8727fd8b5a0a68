package httpserver

import (
	"context"
	"fmt"

	"sommelier-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// Order matters: dialogue depends on the preference and history usecases.
	if err := srv.setupPreferenceDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("setup preference domain: %w", err)
	}
	if err := srv.setupHistoryDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("setup history domain: %w", err)
	}
	if err := srv.setupDialogueDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("setup dialogue domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: open (any origin, method and header)")
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs (not exposed in production)
	if srv.environment != "production" {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
