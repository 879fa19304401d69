package usecase

import (
	"context"

	"taskscribe/internal/model"
	"taskscribe/internal/submission"
	"taskscribe/pkg/linear"
)

// submitLinear pushes the batch through the Linear GraphQL API, one
// issueCreate per task.
func (uc *implUseCase) submitLinear(ctx context.Context, conn model.Integration, input submission.SubmitInput) submission.SubmitOutput {
	var out submission.SubmitOutput
	for _, task := range input.Tasks {
		issue, err := uc.linearClient.CreateIssue(ctx, conn.AccessToken, linear.CreateIssueInput{
			Title:       task.Title,
			Description: task.Description,
			TeamID:      input.Target.TeamID,
			ProjectID:   input.Target.ProjectID,
			AssigneeID:  input.Target.AssigneeID,
			Priority:    task.Priority,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.submitLinear %q: %v", task.Title, err)
			continue
		}

		out.CreatedCount++
		out.CreatedIssues = append(out.CreatedIssues, submission.CreatedIssue{
			ID:    issue.ID,
			Key:   issue.Identifier,
			Title: issue.Title,
			URL:   issue.URL,
		})
	}
	return out
}
