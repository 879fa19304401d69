package usecase

import (
	"taskscribe/internal/draft"
	"taskscribe/internal/draft/repository"
	"taskscribe/pkg/log"
)

// implUseCase is the private implementation of draft.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ draft.UseCase = (*implUseCase)(nil)

// New creates a new draft UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
