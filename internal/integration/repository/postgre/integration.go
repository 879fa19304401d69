package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	repo "taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
)

const integrationColumns = `id, user_id, platform, access_token, refresh_token, expires_at, created_at, updated_at`

func scanIntegration(row interface{ Scan(...any) error }) (model.Integration, error) {
	var in model.Integration
	err := row.Scan(&in.ID, &in.UserID, &in.Platform, &in.AccessToken, &in.RefreshToken,
		&in.ExpiresAt, &in.CreatedAt, &in.UpdatedAt)
	return in, err
}

// UpsertIntegration inserts or replaces the token pair for (user, platform).
func (r *implRepository) UpsertIntegration(ctx context.Context, opt repo.UpsertIntegrationOptions) (model.Integration, error) {
	query := fmt.Sprintf(`
		INSERT INTO integrations (id, user_id, platform, access_token, refresh_token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id, platform) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = NOW()
		RETURNING %s`, integrationColumns)

	in, err := scanIntegration(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Platform, opt.AccessToken, opt.RefreshToken, opt.ExpiresAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertIntegration"), err)
		return model.Integration{}, repo.ErrFailedToUpsert
	}
	return in, nil
}

// GetOneIntegration retrieves a single connection by (user, platform).
// Returns zero-value Integration (ID == "") when not found.
func (r *implRepository) GetOneIntegration(ctx context.Context, opt repo.GetOneIntegrationOptions) (model.Integration, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM integrations WHERE user_id = $1 AND platform = $2 LIMIT 1",
		integrationColumns,
	)

	in, err := scanIntegration(r.db.QueryRowContext(ctx, query, opt.UserID, opt.Platform))
	if err == sql.ErrNoRows {
		return model.Integration{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIntegration"), err)
		return model.Integration{}, repo.ErrFailedToGet
	}
	return in, nil
}

// ListIntegrations returns all of a user's tracker connections.
func (r *implRepository) ListIntegrations(ctx context.Context, opt repo.ListIntegrationsOptions) ([]model.Integration, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM integrations WHERE user_id = $1 ORDER BY platform",
		integrationColumns,
	)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntegrations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var integrations []model.Integration
	for rows.Next() {
		in, err := scanIntegration(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		integrations = append(integrations, in)
	}
	return integrations, nil
}
