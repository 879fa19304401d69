package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"taskscribe/config"
	"taskscribe/pkg/gemini"
	"taskscribe/pkg/jira"
	"taskscribe/pkg/linear"
	"taskscribe/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure handed to the domains
	postgresDB   *sql.DB
	authConfig   config.AuthConfig
	linearConfig config.LinearConfig
	jiraConfig   config.JiraConfig

	// External clients
	geminiClient *gemini.Client
	linearClient *linear.Client
	jiraClient   *jira.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB   *sql.DB
	AuthConfig   config.AuthConfig
	LinearConfig config.LinearConfig
	JiraConfig   config.JiraConfig

	GeminiClient *gemini.Client
	LinearClient *linear.Client
	JiraClient   *jira.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		postgresDB:   cfg.PostgresDB,
		authConfig:   cfg.AuthConfig,
		linearConfig: cfg.LinearConfig,
		jiraConfig:   cfg.JiraConfig,
		geminiClient: cfg.GeminiClient,
		linearClient: cfg.LinearClient,
		jiraClient:   cfg.JiraClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	if srv.linearClient == nil || srv.jiraClient == nil {
		return errors.New("tracker clients are required")
	}
	return nil
}
