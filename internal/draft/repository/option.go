package repository

import "taskscribe/internal/model"

// CreateDraftOptions holds parameters for inserting a new Draft.
type CreateDraftOptions struct {
	UserID   string
	Title    string
	Markdown string
	Platform model.Platform
}

// GetOneDraftOptions filters for a single Draft. UserID is always required:
// there is no unscoped read path.
type GetOneDraftOptions struct {
	ID     string
	UserID string
}

// ListDraftsOptions holds filter and pagination parameters for listing a
// user's Drafts.
type ListDraftsOptions struct {
	UserID  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateDraftOptions holds parameters for an ownership-scoped markdown update.
type UpdateDraftOptions struct {
	ID       string
	UserID   string
	Markdown string
}

// MarkSubmittedOptions records the destination platform on a Draft.
type MarkSubmittedOptions struct {
	ID       string
	UserID   string
	Platform model.Platform
}
