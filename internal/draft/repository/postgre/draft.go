package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

const draftColumns = `id, user_id, title, markdown, platform, created_at, updated_at`

func scanDraft(row interface{ Scan(...any) error }) (model.Draft, error) {
	var d model.Draft
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &d.Markdown, &d.Platform, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// CreateDraft inserts a new Draft row and returns the created entity.
func (r *implRepository) CreateDraft(ctx context.Context, opt repo.CreateDraftOptions) (model.Draft, error) {
	query := fmt.Sprintf(`
		INSERT INTO drafts (id, user_id, title, markdown, platform, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, draftColumns)

	d, err := scanDraft(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Markdown, opt.Platform,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDraft"), err)
		return model.Draft{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetOneDraft retrieves a single Draft by the provided filters (AND condition).
// Returns zero-value Draft (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneDraft(ctx context.Context, opt repo.GetOneDraftOptions) (model.Draft, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM drafts WHERE %s LIMIT 1", draftColumns, mods)

	d, err := scanDraft(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Draft{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDraft"), err)
		return model.Draft{}, repo.ErrFailedToGet
	}
	return d, nil
}

// ListDrafts returns a paginated list of the user's Drafts and the total count.
func (r *implRepository) ListDrafts(ctx context.Context, opt repo.ListDraftsOptions) ([]model.Draft, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM drafts WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListDrafts"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM drafts %s", draftColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDrafts"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var drafts []model.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		drafts = append(drafts, d)
	}
	return drafts, total, nil
}

// UpdateDraftMarkdown replaces the markdown of a Draft scoped to its owner
// and returns the updated entity. Zero-value Draft when no row matched.
func (r *implRepository) UpdateDraftMarkdown(ctx context.Context, opt repo.UpdateDraftOptions) (model.Draft, error) {
	query := fmt.Sprintf(`
		UPDATE drafts
		SET markdown = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
		RETURNING %s`, draftColumns)

	d, err := scanDraft(r.db.QueryRowContext(ctx, query, opt.Markdown, time.Now(), opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Draft{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDraftMarkdown"), err)
		return model.Draft{}, repo.ErrFailedToUpdate
	}
	return d, nil
}

// MarkDraftSubmitted records the destination platform on a Draft scoped to
// its owner. Zero-value Draft when no row matched.
func (r *implRepository) MarkDraftSubmitted(ctx context.Context, opt repo.MarkSubmittedOptions) (model.Draft, error) {
	query := fmt.Sprintf(`
		UPDATE drafts
		SET platform = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
		RETURNING %s`, draftColumns)

	d, err := scanDraft(r.db.QueryRowContext(ctx, query, opt.Platform, time.Now(), opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Draft{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkDraftSubmitted"), err)
		return model.Draft{}, repo.ErrFailedToUpdate
	}
	return d, nil
}
