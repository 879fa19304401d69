package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskscribe/config"
	"taskscribe/config/postgre"
	_ "taskscribe/docs" // Swagger docs
	"taskscribe/internal/httpserver"
	"taskscribe/pkg/gemini"
	"taskscribe/pkg/jira"
	"taskscribe/pkg/linear"
	"taskscribe/pkg/log"
)

// @title       Taskscribe API
// @description Turns markdown notes into tracker issues: segmentation, Gemini task extraction, Linear/Jira submission.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskscribe...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	// 4. External clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	linearClient := linear.NewClient()
	jiraClient := jira.NewClient(cfg.Jira.ClientID, cfg.Jira.ClientSecret)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		PostgresDB:   db,
		AuthConfig:   cfg.Auth,
		LinearConfig: cfg.Linear,
		JiraConfig:   cfg.Jira,
		GeminiClient: geminiClient,
		LinearClient: linearClient,
		JiraClient:   jiraClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
