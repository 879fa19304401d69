package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskscribe/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.authConfig)
	api := srv.gin.Group("/api/v1")
	api.Use(mw.RequestID())

	drafts, err := srv.setupDraftDomain(ctx, api, mw)
	if err != nil {
		return err
	}
	integrations, err := srv.setupIntegrationDomain(ctx, api, mw)
	if err != nil {
		return err
	}
	if err := srv.setupNoteDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupSubmissionDomain(ctx, api, mw, integrations, drafts); err != nil {
		return err
	}

	return nil
}
