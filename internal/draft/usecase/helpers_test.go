package usecase_test

import (
	"context"

	"taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

// mockLogger discards all log output in tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory draft store keyed by draft ID.
type mockRepo struct {
	drafts map[string]model.Draft
	seq    int
	fail   bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{drafts: map[string]model.Draft{}}
}

func (m *mockRepo) CreateDraft(ctx context.Context, opt repository.CreateDraftOptions) (model.Draft, error) {
	if m.fail {
		return model.Draft{}, repository.ErrFailedToInsert
	}
	m.seq++
	d := model.Draft{
		ID:       "draft-" + string(rune('0'+m.seq)),
		UserID:   opt.UserID,
		Title:    opt.Title,
		Markdown: opt.Markdown,
		Platform: opt.Platform,
	}
	m.drafts[d.ID] = d
	return d, nil
}

func (m *mockRepo) GetOneDraft(ctx context.Context, opt repository.GetOneDraftOptions) (model.Draft, error) {
	if m.fail {
		return model.Draft{}, repository.ErrFailedToGet
	}
	d, ok := m.drafts[opt.ID]
	if !ok || (opt.UserID != "" && d.UserID != opt.UserID) {
		return model.Draft{}, nil
	}
	return d, nil
}

func (m *mockRepo) ListDrafts(ctx context.Context, opt repository.ListDraftsOptions) ([]model.Draft, int, error) {
	if m.fail {
		return nil, 0, repository.ErrFailedToList
	}
	var out []model.Draft
	for _, d := range m.drafts {
		if d.UserID == opt.UserID {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateDraftMarkdown(ctx context.Context, opt repository.UpdateDraftOptions) (model.Draft, error) {
	if m.fail {
		return model.Draft{}, repository.ErrFailedToUpdate
	}
	d, ok := m.drafts[opt.ID]
	if !ok || d.UserID != opt.UserID {
		return model.Draft{}, nil
	}
	d.Markdown = opt.Markdown
	m.drafts[opt.ID] = d
	return d, nil
}

func (m *mockRepo) MarkDraftSubmitted(ctx context.Context, opt repository.MarkSubmittedOptions) (model.Draft, error) {
	if m.fail {
		return model.Draft{}, repository.ErrFailedToUpdate
	}
	d, ok := m.drafts[opt.ID]
	if !ok || d.UserID != opt.UserID {
		return model.Draft{}, nil
	}
	d.Platform = opt.Platform
	m.drafts[opt.ID] = d
	return d, nil
}
