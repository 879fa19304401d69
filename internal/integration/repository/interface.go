package repository

import (
	"context"

	"taskscribe/internal/model"
)

// Repository defines all data access methods for tracker connections.
// Not-found is reported as a zero-value Integration (ID == ""), never as an
// error.
type Repository interface {
	UpsertIntegration(ctx context.Context, opt UpsertIntegrationOptions) (model.Integration, error)
	GetOneIntegration(ctx context.Context, opt GetOneIntegrationOptions) (model.Integration, error)
	ListIntegrations(ctx context.Context, opt ListIntegrationsOptions) ([]model.Integration, error)
}
