package jira

// Credentials is a user's Atlassian OAuth token pair.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Resource is an Atlassian site (cloud) the token can access.
type Resource struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Priority is one entry of a Jira site's priority scheme.
type Priority struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StatusColor string `json:"statusColor"`
}

// Issue is the subset of created-issue fields the pipeline reports back.
type Issue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// CreateIssueParams holds the fields for one issue-create call.
// PriorityID is best-effort: leave empty to omit priority entirely, which is
// the safe default since many Jira projects reject the field.
type CreateIssueParams struct {
	ProjectID   string
	Summary     string
	Description string
	IssueTypeID string
	AssigneeID  string
	PriorityID  string
}
