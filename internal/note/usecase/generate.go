package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskscribe/internal/model"
	"taskscribe/internal/note"
	"taskscribe/pkg/gemini"
)

// Autocomplete returns a short natural continuation of the text at the
// cursor, always plain prose.
func (uc *implUseCase) Autocomplete(ctx context.Context, sc model.Scope, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", note.ErrEmptyInput
	}

	completion, err := uc.llm.GenerateText(ctx, gemini.BuildAutocompletePrompt(text), nil)
	if err != nil {
		uc.l.Errorf(ctx, "Autocomplete: completion failed: %v", err)
		return "", fmt.Errorf("%w: %v", note.ErrLLMUnavailable, err)
	}

	return completion, nil
}

// GenerateTitle returns a 3-4 word title for the content, with any
// surrounding quote characters stripped.
func (uc *implUseCase) GenerateTitle(ctx context.Context, sc model.Scope, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", note.ErrEmptyInput
	}

	raw, err := uc.llm.GenerateText(ctx, gemini.BuildTitlePrompt(text), nil)
	if err != nil {
		uc.l.Errorf(ctx, "GenerateTitle: completion failed: %v", err)
		return "", fmt.Errorf("%w: %v", note.ErrLLMUnavailable, err)
	}

	title := strings.TrimSpace(raw)
	title = strings.Trim(title, "\"'`")
	return title, nil
}
