package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskscribe/internal/draft"
	draftHTTP "taskscribe/internal/draft/delivery/http"
	draftRepo "taskscribe/internal/draft/repository/postgre"
	draftUC "taskscribe/internal/draft/usecase"
	"taskscribe/internal/integration"
	integrationHTTP "taskscribe/internal/integration/delivery/http"
	integrationRepo "taskscribe/internal/integration/repository/postgre"
	integrationUC "taskscribe/internal/integration/usecase"
	"taskscribe/internal/middleware"
	noteHTTP "taskscribe/internal/note/delivery/http"
	noteUC "taskscribe/internal/note/usecase"
	submissionHTTP "taskscribe/internal/submission/delivery/http"
	submissionUC "taskscribe/internal/submission/usecase"
)

// setupDraftDomain initializes the draft domain and registers its routes.
// The use case is returned so the submission domain can mark drafts submitted.
func (srv *HTTPServer) setupDraftDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (draft.UseCase, error) {
	repo := draftRepo.New(srv.postgresDB, srv.l)
	uc := draftUC.New(repo, srv.l)
	h := draftHTTP.New(srv.l, uc)
	draftHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Draft domain registered")
	return uc, nil
}

// setupIntegrationDomain initializes tracker connections and registers its
// routes. The use case is returned so the submission domain can resolve and
// rotate tokens.
func (srv *HTTPServer) setupIntegrationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (integration.UseCase, error) {
	repo := integrationRepo.New(srv.postgresDB, srv.l)
	uc := integrationUC.New(repo, srv.l, srv.linearConfig, srv.jiraConfig)
	h := integrationHTTP.New(srv.l, uc)
	integrationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Integration domain registered")
	return uc, nil
}

// setupNoteDomain initializes segmentation + extraction and registers its routes.
func (srv *HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := noteUC.New(srv.l, srv.geminiClient)
	h := noteHTTP.New(srv.l, uc)
	noteHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Note domain registered")
	return nil
}

// setupSubmissionDomain initializes the platform submitter and registers its routes.
func (srv *HTTPServer) setupSubmissionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, integrations integration.UseCase, drafts draft.UseCase) error {
	uc := submissionUC.New(srv.l, srv.linearClient, srv.jiraClient, integrations, drafts)
	h := submissionHTTP.New(srv.l, uc)
	submissionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Submission domain registered")
	return nil
}
