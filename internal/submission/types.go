package submission

import (
	"taskscribe/internal/model"
	"taskscribe/internal/note"
)

// Target identifies where issues land on the destination tracker.
// Linear requires TeamID; Jira requires CloudID, ProjectID and IssueTypeID.
type Target struct {
	TeamID      string
	CloudID     string
	ProjectID   string
	IssueTypeID string
	AssigneeID  string
}

// SubmitInput is one batch of extracted tasks headed for a tracker.
// DraftID, when set, marks the source draft submitted after the batch.
type SubmitInput struct {
	Tasks    []note.ExtractedTask
	Platform model.Platform
	Target   Target
	DraftID  string
}

// CreatedIssue reports one successfully created issue. Key is the
// human-readable identifier (Jira issue key or Linear identifier).
type CreatedIssue struct {
	ID    string
	Key   string
	Title string
	URL   string
}

// SubmitOutput reports the batch outcome. CreatedCount can be lower than the
// task count: per-item failures are logged and skipped, never fatal.
type SubmitOutput struct {
	CreatedCount  int
	CreatedIssues []CreatedIssue
}
