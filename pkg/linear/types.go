package linear

// Team is a Linear team, the required target container for created issues.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Issue is the subset of Linear issue fields the pipeline reports back.
type Issue struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// CreateIssueInput holds the fields for one issueCreate mutation.
// Priority follows Linear semantics: 0 = none, 1 = urgent ... 4 = low.
type CreateIssueInput struct {
	Title       string
	Description string
	TeamID      string
	ProjectID   string
	AssigneeID  string
	Priority    int
}
