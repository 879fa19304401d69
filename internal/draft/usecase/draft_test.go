package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskscribe/internal/draft"
	"taskscribe/internal/draft/usecase"
	"taskscribe/internal/model"
)

var testScope = model.Scope{UserID: "user-1", Email: "user-1@example.com"}

func TestCreate(t *testing.T) {
	t.Run("derives title from first heading", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{
			Markdown: "intro line\n\n## Sprint planning\n\n- [ ] book room",
			Platform: model.PlatformLinear,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.Title != "Sprint planning" {
			t.Errorf("title = %q, want %q", out.Draft.Title, "Sprint planning")
		}
		if out.Draft.UserID != testScope.UserID {
			t.Errorf("userID = %q, want %q", out.Draft.UserID, testScope.UserID)
		}
	})

	t.Run("explicit title wins over heading", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{
			Markdown: "# Heading title",
			Title:    "My title",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.Title != "My title" {
			t.Errorf("title = %q, want %q", out.Draft.Title, "My title")
		}
	})

	t.Run("no heading falls back to default title", func(t *testing.T) {
		repo := newMockRepo()
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{
			Markdown: "just some text without any heading",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.Title != "Untitled draft" {
			t.Errorf("title = %q, want %q", out.Draft.Title, "Untitled draft")
		}
	})

	t.Run("empty markdown rejected", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), &mockLogger{})

		_, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{Markdown: "   \n"})
		if !errors.Is(err, draft.ErrEmptyMarkdown) {
			t.Fatalf("err = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		uc := usecase.New(newMockRepo(), &mockLogger{})

		_, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{
			Markdown: "## x",
			Platform: model.Platform("trello"),
		})
		if !errors.Is(err, draft.ErrInvalidPlatform) {
			t.Fatalf("err = %v, want ErrInvalidPlatform", err)
		}
	})
}

func TestDetail(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.New(repo, &mockLogger{})

	created, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{Markdown: "## Notes"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("owner sees the draft", func(t *testing.T) {
		out, err := uc.Detail(context.Background(), testScope, created.Draft.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.ID != created.Draft.ID {
			t.Errorf("id = %q, want %q", out.Draft.ID, created.Draft.ID)
		}
	})

	t.Run("foreign draft is not found, never forbidden", func(t *testing.T) {
		other := model.Scope{UserID: "user-2"}
		_, err := uc.Detail(context.Background(), other, created.Draft.ID)
		if !errors.Is(err, draft.ErrDraftNotFound) {
			t.Fatalf("err = %v, want ErrDraftNotFound", err)
		}
	})

	t.Run("missing draft is not found", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), testScope, "nope")
		if !errors.Is(err, draft.ErrDraftNotFound) {
			t.Fatalf("err = %v, want ErrDraftNotFound", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.New(repo, &mockLogger{})

	created, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{Markdown: "## Notes"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("owner can update markdown", func(t *testing.T) {
		out, err := uc.Update(context.Background(), testScope, draft.UpdateDraftInput{
			ID:       created.Draft.ID,
			Markdown: "## Notes\n\nnew body",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.Markdown != "## Notes\n\nnew body" {
			t.Errorf("markdown not updated: %q", out.Draft.Markdown)
		}
	})

	t.Run("foreign update is not found", func(t *testing.T) {
		other := model.Scope{UserID: "user-2"}
		_, err := uc.Update(context.Background(), other, draft.UpdateDraftInput{
			ID:       created.Draft.ID,
			Markdown: "hijack",
		})
		if !errors.Is(err, draft.ErrDraftNotFound) {
			t.Fatalf("err = %v, want ErrDraftNotFound", err)
		}
		got, _ := uc.Detail(context.Background(), testScope, created.Draft.ID)
		if got.Draft.Markdown == "hijack" {
			t.Error("foreign update must not modify the draft")
		}
	})

	t.Run("empty markdown rejected", func(t *testing.T) {
		_, err := uc.Update(context.Background(), testScope, draft.UpdateDraftInput{
			ID:       created.Draft.ID,
			Markdown: "",
		})
		if !errors.Is(err, draft.ErrEmptyMarkdown) {
			t.Fatalf("err = %v, want ErrEmptyMarkdown", err)
		}
	})
}

func TestList(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.New(repo, &mockLogger{})

	for _, md := range []string{"## a", "## b", "## c"} {
		if _, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{Markdown: md}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := uc.Create(context.Background(), model.Scope{UserID: "user-2"}, draft.CreateDraftInput{Markdown: "## z"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := uc.List(context.Background(), testScope, draft.ListDraftsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 3 {
		t.Errorf("total = %d, want 3", out.Total)
	}
	if out.Limit != 20 {
		t.Errorf("default limit = %d, want 20", out.Limit)
	}
	for _, d := range out.Drafts {
		if d.UserID != testScope.UserID {
			t.Errorf("listed foreign draft %q", d.ID)
		}
	}
}

func TestMarkSubmitted(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.New(repo, &mockLogger{})

	created, err := uc.Create(context.Background(), testScope, draft.CreateDraftInput{Markdown: "## Notes"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("records destination platform", func(t *testing.T) {
		if err := uc.MarkSubmitted(context.Background(), testScope, created.Draft.ID, model.PlatformJira); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := uc.Detail(context.Background(), testScope, created.Draft.ID)
		if got.Draft.Platform != model.PlatformJira {
			t.Errorf("platform = %q, want jira", got.Draft.Platform)
		}
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		err := uc.MarkSubmitted(context.Background(), testScope, created.Draft.ID, model.Platform("asana"))
		if !errors.Is(err, draft.ErrInvalidPlatform) {
			t.Fatalf("err = %v, want ErrInvalidPlatform", err)
		}
	})

	t.Run("foreign draft is not found", func(t *testing.T) {
		err := uc.MarkSubmitted(context.Background(), model.Scope{UserID: "user-2"}, created.Draft.ID, model.PlatformJira)
		if !errors.Is(err, draft.ErrDraftNotFound) {
			t.Fatalf("err = %v, want ErrDraftNotFound", err)
		}
	})
}
