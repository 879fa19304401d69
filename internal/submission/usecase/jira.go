package usecase

import (
	"context"

	"taskscribe/internal/model"
	"taskscribe/internal/submission"
	"taskscribe/pkg/jira"
)

// submitJira pushes the batch through the Jira Cloud REST API. Refreshed
// tokens are persisted through the integration store so the next batch starts
// from the rotated pair.
func (uc *implUseCase) submitJira(ctx context.Context, sc model.Scope, conn model.Integration, input submission.SubmitInput) submission.SubmitOutput {
	saver := func(ctx context.Context, creds jira.Credentials) error {
		return uc.integrations.SaveToken(ctx, sc, model.PlatformJira,
			creds.AccessToken, creds.RefreshToken, conn.ExpiresAt)
	}
	session := uc.jiraClient.Session(jira.Credentials{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
	}, saver)

	// Priority mapping is best-effort: a failed or odd-looking priority list
	// disables the field for the whole batch.
	priorities, err := session.Priorities(ctx, input.Target.CloudID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.submitJira Priorities: %v", err)
		priorities = nil
	}

	var out submission.SubmitOutput
	for _, task := range input.Tasks {
		params := jira.CreateIssueParams{
			ProjectID:   input.Target.ProjectID,
			Summary:     task.Title,
			Description: task.Description,
			IssueTypeID: input.Target.IssueTypeID,
			AssigneeID:  input.Target.AssigneeID,
			PriorityID:  priorityIDFor(priorities, task.Priority),
		}

		issue, err := session.CreateIssue(ctx, input.Target.CloudID, params)
		if err != nil && params.PriorityID != "" {
			// Priority is optional and must never cost an issue. Some
			// projects reject the field outright, so retry the item bare
			// and stop sending priority for the rest of the batch.
			uc.l.Warnf(ctx, "uc.submitJira %q: retrying without priority: %v", task.Title, err)
			params.PriorityID = ""
			issue, err = session.CreateIssue(ctx, input.Target.CloudID, params)
			if err == nil {
				priorities = nil
			}
		}
		if err != nil {
			uc.l.Warnf(ctx, "uc.submitJira %q: %v", task.Title, err)
			continue
		}

		out.CreatedCount++
		out.CreatedIssues = append(out.CreatedIssues, submission.CreatedIssue{
			ID:    issue.ID,
			Key:   issue.Key,
			Title: task.Title,
			URL:   issue.Self,
		})
	}
	return out
}
