package http

import (
	"taskscribe/internal/model"
	"taskscribe/internal/note"
	"taskscribe/internal/submission"
)

// --- Request DTOs ---

type taskReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority"    binding:"gte=0,lte=4"`
	DueDate     string `json:"due_date"`
	Assignee    string `json:"assignee"`
}

type submitReq struct {
	Tasks       []taskReq `json:"tasks"    binding:"required"`
	Platform    string    `json:"platform" binding:"required"`
	TeamID      string    `json:"team_id"`
	CloudID     string    `json:"cloud_id"`
	ProjectID   string    `json:"project_id"`
	IssueTypeID string    `json:"issue_type_id"`
	AssigneeID  string    `json:"assignee_id"`
	DraftID     string    `json:"draft_id"`
}

func (r submitReq) toInput() submission.SubmitInput {
	tasks := make([]note.ExtractedTask, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = note.ExtractedTask{
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			Assignee:    t.Assignee,
		}
	}
	return submission.SubmitInput{
		Tasks:    tasks,
		Platform: model.Platform(r.Platform),
		Target: submission.Target{
			TeamID:      r.TeamID,
			CloudID:     r.CloudID,
			ProjectID:   r.ProjectID,
			IssueTypeID: r.IssueTypeID,
			AssigneeID:  r.AssigneeID,
		},
		DraftID: r.DraftID,
	}
}

// --- Response DTOs ---

type createdIssueResp struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type submitResp struct {
	CreatedCount  int                `json:"created_count"`
	CreatedIssues []createdIssueResp `json:"created_issues"`
}

func (h *handler) newSubmitResp(out submission.SubmitOutput) submitResp {
	issues := make([]createdIssueResp, len(out.CreatedIssues))
	for i, issue := range out.CreatedIssues {
		issues[i] = createdIssueResp{
			ID:    issue.ID,
			Key:   issue.Key,
			Title: issue.Title,
			URL:   issue.URL,
		}
	}
	return submitResp{
		CreatedCount:  out.CreatedCount,
		CreatedIssues: issues,
	}
}
