package usecase

import (
	"taskscribe/internal/draft"
	"taskscribe/internal/integration"
	"taskscribe/internal/submission"
	"taskscribe/pkg/jira"
	"taskscribe/pkg/linear"
	"taskscribe/pkg/log"
)

// implUseCase is the private implementation of submission.UseCase.
type implUseCase struct {
	l            log.Logger
	linearClient *linear.Client
	jiraClient   *jira.Client
	integrations integration.UseCase
	drafts       draft.UseCase
}

var _ submission.UseCase = (*implUseCase)(nil)

// New creates a new submission UseCase implementation. drafts may be nil when
// draft bookkeeping is not wired.
func New(l log.Logger, linearClient *linear.Client, jiraClient *jira.Client, integrations integration.UseCase, drafts draft.UseCase) *implUseCase {
	return &implUseCase{
		l:            l,
		linearClient: linearClient,
		jiraClient:   jiraClient,
		integrations: integrations,
		drafts:       drafts,
	}
}
