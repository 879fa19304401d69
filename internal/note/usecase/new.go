package usecase

import (
	"taskscribe/internal/note"
	"taskscribe/pkg/gemini"
	pkgLog "taskscribe/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm *gemini.Client
}

var _ note.UseCase = (*implUseCase)(nil)

// New creates a new note UseCase instance.
func New(l pkgLog.Logger, llm *gemini.Client) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
