package draft

import "taskscribe/internal/model"

// --- UseCase Inputs ---

type CreateDraftInput struct {
	Markdown string
	Platform model.Platform
	Title    string // optional; derived from the markdown when empty
}

type UpdateDraftInput struct {
	ID       string
	Markdown string
}

type ListDraftsInput struct {
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateDraftOutput struct {
	Draft model.Draft
}

type DetailDraftOutput struct {
	Draft model.Draft
}

type UpdateDraftOutput struct {
	Draft model.Draft
}

type ListDraftsOutput struct {
	Drafts []model.Draft
	Total  int
	Limit  int
	Offset int
}
