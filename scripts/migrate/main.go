// Command migrate applies the database schema. Safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"os"

	"taskscribe/config"
	"taskscribe/config/postgre"
	"taskscribe/pkg/log"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS drafts (
		id          UUID PRIMARY KEY,
		user_id     TEXT NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		markdown    TEXT NOT NULL,
		platform    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drafts_user_updated ON drafts (user_id, updated_at DESC)`,
	`CREATE TABLE IF NOT EXISTS integrations (
		id            UUID PRIMARY KEY,
		user_id       TEXT NOT NULL,
		platform      TEXT NOT NULL,
		access_token  TEXT NOT NULL,
		refresh_token TEXT NOT NULL DEFAULT '',
		expires_at    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, platform)
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer postgre.Disconnect(ctx, db)

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Fatalf(ctx, "Statement %d failed: %v", i+1, err)
		}
	}
	logger.Infof(ctx, "Schema applied (%d statements)", len(statements))
}
