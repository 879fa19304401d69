package usecase

import (
	"context"
	"strings"

	"taskscribe/internal/model"
	"taskscribe/internal/note"
)

const headingPrefix = "## "

// Segment splits markdown into one Task per "## " heading section. Heading
// text becomes the title; every following line up to the next heading joins
// the body. Content before the first heading is discarded; a heading is the
// only way to open a section.
func (uc *implUseCase) Segment(ctx context.Context, sc model.Scope, input note.SegmentInput) (note.SegmentOutput, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return note.SegmentOutput{}, note.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Segment: user=%s input_length=%d", sc.UserID, len(input.Markdown))

	lines := strings.Split(strings.TrimSpace(input.Markdown), "\n")
	tasks := []note.Task{}

	var currentTitle string
	var currentBody []string

	for _, line := range lines {
		if strings.HasPrefix(line, headingPrefix) {
			if currentTitle != "" {
				tasks = append(tasks, note.Task{
					Title: currentTitle,
					Body:  strings.TrimSpace(strings.Join(currentBody, "\n")),
				})
			}
			currentTitle = strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))
			currentBody = nil
			continue
		}
		currentBody = append(currentBody, line)
	}

	// Flush the open section so the last task is never dropped.
	if currentTitle != "" {
		tasks = append(tasks, note.Task{
			Title: currentTitle,
			Body:  strings.TrimSpace(strings.Join(currentBody, "\n")),
		})
	}

	uc.l.Infof(ctx, "Segment: produced %d tasks", len(tasks))
	return note.SegmentOutput{Tasks: tasks}, nil
}
