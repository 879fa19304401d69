package http

import (
	"taskscribe/internal/note"
)

// --- Request DTOs ---

type segmentReq struct {
	Markdown string `json:"markdown" binding:"required"`
	Platform string `json:"platform"` // echoed back for clients, not used by segmentation
}

func (r segmentReq) toInput() note.SegmentInput {
	return note.SegmentInput{Markdown: r.Markdown}
}

type extractReq struct {
	Text string `json:"text" binding:"required"`
	Mode string `json:"mode" binding:"omitempty,oneof=rewrite improve expand summarize tasks"`
}

func (r extractReq) toInput() note.ExtractInput {
	return note.ExtractInput{
		Text: r.Text,
		Mode: note.Mode(r.Mode),
	}
}

// --- Response DTOs ---

type segmentResp struct {
	Tasks    []note.Task `json:"tasks"`
	Platform string      `json:"platform,omitempty"`
}

func (h *handler) newSegmentResp(out note.SegmentOutput, platform string) segmentResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []note.Task{}
	}
	return segmentResp{Tasks: tasks, Platform: platform}
}

type styledResult struct {
	Text string `json:"text"`
}

// extractResp mirrors the mode union: Tasks for task mode, Result otherwise.
type extractResp struct {
	Mode   string               `json:"mode"`
	Tasks  []note.ExtractedTask `json:"tasks,omitempty"`
	Result *styledResult        `json:"result,omitempty"`
}

func (h *handler) newExtractResp(out note.ExtractOutput) extractResp {
	resp := extractResp{Mode: string(out.Mode)}
	if out.Mode == note.ModeTasks {
		resp.Tasks = out.Tasks
		if resp.Tasks == nil {
			resp.Tasks = []note.ExtractedTask{}
		}
		return resp
	}
	resp.Result = &styledResult{Text: out.Text}
	return resp
}

type autocompleteResp struct {
	Result string `json:"result"`
}

type titleResp struct {
	Title string `json:"title"`
}
