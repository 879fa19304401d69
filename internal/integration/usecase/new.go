package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"taskscribe/config"
	"taskscribe/internal/integration"
	"taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
	"taskscribe/pkg/log"
)

const (
	stateCacheSize = 4096
	stateTTL       = 10 * time.Minute
)

var (
	linearEndpoint = oauth2.Endpoint{
		AuthURL:  "https://linear.app/oauth/authorize",
		TokenURL: "https://api.linear.app/oauth/token",
	}
	atlassianEndpoint = oauth2.Endpoint{
		AuthURL:  "https://auth.atlassian.com/authorize",
		TokenURL: "https://auth.atlassian.com/oauth/token",
	}

	linearScopes = []string{"read", "issues:create"}
	jiraScopes   = []string{"read:jira-work", "write:jira-work", "offline_access"}
)

// stateOwner records who started an OAuth flow so the callback can verify it.
type stateOwner struct {
	UserID   string
	Platform model.Platform
}

// implUseCase is the private implementation of integration.UseCase.
type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	configs map[model.Platform]*oauth2.Config

	// pending OAuth states, evicted after stateTTL
	states *expirable.LRU[string, stateOwner]
}

var _ integration.UseCase = (*implUseCase)(nil)

// New creates a new integration UseCase implementation.
func New(repo repository.Repository, l log.Logger, linearCfg config.LinearConfig, jiraCfg config.JiraConfig) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		configs: map[model.Platform]*oauth2.Config{
			model.PlatformLinear: {
				ClientID:     linearCfg.ClientID,
				ClientSecret: linearCfg.ClientSecret,
				RedirectURL:  linearCfg.RedirectURL,
				Endpoint:     linearEndpoint,
				Scopes:       linearScopes,
			},
			model.PlatformJira: {
				ClientID:     jiraCfg.ClientID,
				ClientSecret: jiraCfg.ClientSecret,
				RedirectURL:  jiraCfg.RedirectURL,
				Endpoint:     atlassianEndpoint,
				Scopes:       jiraScopes,
			},
		},
		states: expirable.NewLRU[string, stateOwner](stateCacheSize, nil, stateTTL),
	}
}
