package repository

import (
	"time"

	"taskscribe/internal/model"
)

// UpsertIntegrationOptions replaces the token pair for (user, platform),
// inserting the row on first connect.
type UpsertIntegrationOptions struct {
	UserID       string
	Platform     model.Platform
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// GetOneIntegrationOptions filters for a single connection.
type GetOneIntegrationOptions struct {
	UserID   string
	Platform model.Platform
}

// ListIntegrationsOptions lists a user's connections.
type ListIntegrationsOptions struct {
	UserID string
}
