package http

import (
	"time"

	"taskscribe/internal/draft"
	"taskscribe/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Markdown string `json:"markdown" binding:"required"`
	Platform string `json:"platform" binding:"omitempty,oneof=linear jira"`
	Title    string `json:"title"    binding:"omitempty,max=255"`
}

func (r createReq) toInput() draft.CreateDraftInput {
	return draft.CreateDraftInput{
		Markdown: r.Markdown,
		Platform: model.Platform(r.Platform),
		Title:    r.Title,
	}
}

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() draft.ListDraftsInput {
	return draft.ListDraftsInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type updateReq struct {
	ID       string `json:"-"` // populated from URI param
	Markdown string `json:"markdown" binding:"required"`
}

func (r updateReq) toInput() draft.UpdateDraftInput {
	return draft.UpdateDraftInput{
		ID:       r.ID,
		Markdown: r.Markdown,
	}
}

// --- Response DTOs ---

type draftResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	Platform  string    `json:"platform,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDraftResp(d model.Draft) draftResp {
	return draftResp{
		ID:        d.ID,
		Title:     d.Title,
		Markdown:  d.Markdown,
		Platform:  string(d.Platform),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type createResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newCreateResp(out draft.CreateDraftOutput) createResp {
	return createResp{Draft: newDraftResp(out.Draft)}
}

type listResp struct {
	Drafts []draftResp `json:"drafts"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out draft.ListDraftsOutput) listResp {
	drafts := make([]draftResp, len(out.Drafts))
	for i, d := range out.Drafts {
		drafts[i] = newDraftResp(d)
	}
	return listResp{
		Drafts: drafts,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newDetailResp(out draft.DetailDraftOutput) detailResp {
	return detailResp{Draft: newDraftResp(out.Draft)}
}

type updateResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newUpdateResp(out draft.UpdateDraftOutput) updateResp {
	return updateResp{Draft: newDraftResp(out.Draft)}
}
