package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskscribe/config"
	"taskscribe/internal/integration"
	"taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	byKey map[string]model.Integration
}

func newMockRepo() *mockRepo {
	return &mockRepo{byKey: map[string]model.Integration{}}
}

func key(userID string, platform model.Platform) string {
	return userID + "/" + string(platform)
}

func (m *mockRepo) UpsertIntegration(ctx context.Context, opt repository.UpsertIntegrationOptions) (model.Integration, error) {
	in := model.Integration{
		ID:           "conn-" + key(opt.UserID, opt.Platform),
		UserID:       opt.UserID,
		Platform:     opt.Platform,
		AccessToken:  opt.AccessToken,
		RefreshToken: opt.RefreshToken,
		ExpiresAt:    opt.ExpiresAt,
	}
	m.byKey[key(opt.UserID, opt.Platform)] = in
	return in, nil
}

func (m *mockRepo) GetOneIntegration(ctx context.Context, opt repository.GetOneIntegrationOptions) (model.Integration, error) {
	return m.byKey[key(opt.UserID, opt.Platform)], nil
}

func (m *mockRepo) ListIntegrations(ctx context.Context, opt repository.ListIntegrationsOptions) ([]model.Integration, error) {
	var out []model.Integration
	for _, in := range m.byKey {
		if in.UserID == opt.UserID {
			out = append(out, in)
		}
	}
	return out, nil
}

var testScope = model.Scope{UserID: "user-1"}

func newTestUseCase(repo repository.Repository) *implUseCase {
	return New(repo, &noopLogger{},
		config.LinearConfig{ClientID: "lin-id", ClientSecret: "lin-secret", RedirectURL: "https://app.example.com/cb/linear"},
		config.JiraConfig{ClientID: "jira-id", ClientSecret: "jira-secret", RedirectURL: "https://app.example.com/cb/jira"},
	)
}

func TestConnectURL(t *testing.T) {
	uc := newTestUseCase(newMockRepo())

	t.Run("linear url carries client id and state", func(t *testing.T) {
		out, err := uc.ConnectURL(context.Background(), testScope, model.PlatformLinear)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.URL, "https://linear.app/oauth/authorize") {
			t.Errorf("url = %q", out.URL)
		}
		if !strings.Contains(out.URL, "client_id=lin-id") || !strings.Contains(out.URL, "state=") {
			t.Errorf("url missing client_id or state: %q", out.URL)
		}
	})

	t.Run("jira url carries atlassian audience", func(t *testing.T) {
		out, err := uc.ConnectURL(context.Background(), testScope, model.PlatformJira)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.URL, "audience=api.atlassian.com") {
			t.Errorf("url missing audience: %q", out.URL)
		}
	})

	t.Run("unknown platform rejected", func(t *testing.T) {
		_, err := uc.ConnectURL(context.Background(), testScope, model.Platform("trello"))
		if !errors.Is(err, integration.ErrInvalidPlatform) {
			t.Fatalf("err = %v, want ErrInvalidPlatform", err)
		}
	})
}

func TestHandleCallback(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","token_type":"bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	newUC := func(repo repository.Repository) *implUseCase {
		uc := newTestUseCase(repo)
		for _, cfg := range uc.configs {
			cfg.Endpoint.TokenURL = tokenServer.URL
		}
		return uc
	}

	issueState := func(t *testing.T, uc *implUseCase, sc model.Scope, platform model.Platform) string {
		t.Helper()
		out, err := uc.ConnectURL(context.Background(), sc, platform)
		if err != nil {
			t.Fatalf("ConnectURL: %v", err)
		}
		i := strings.Index(out.URL, "state=")
		state := out.URL[i+len("state="):]
		if j := strings.Index(state, "&"); j >= 0 {
			state = state[:j]
		}
		return state
	}

	t.Run("exchanges code and stores token pair", func(t *testing.T) {
		repo := newMockRepo()
		uc := newUC(repo)
		state := issueState(t, uc, testScope, model.PlatformLinear)

		if err := uc.HandleCallback(context.Background(), testScope, model.PlatformLinear, "good-code", state); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := uc.Token(context.Background(), testScope, model.PlatformLinear)
		if err != nil {
			t.Fatalf("Token: %v", err)
		}
		if stored.AccessToken != "at-1" || stored.RefreshToken != "rt-1" {
			t.Errorf("stored tokens = %q/%q", stored.AccessToken, stored.RefreshToken)
		}
	})

	t.Run("unknown state rejected", func(t *testing.T) {
		uc := newUC(newMockRepo())
		err := uc.HandleCallback(context.Background(), testScope, model.PlatformLinear, "good-code", "forged")
		if !errors.Is(err, integration.ErrInvalidState) {
			t.Fatalf("err = %v, want ErrInvalidState", err)
		}
	})

	t.Run("state bound to issuing user", func(t *testing.T) {
		uc := newUC(newMockRepo())
		state := issueState(t, uc, testScope, model.PlatformLinear)

		other := model.Scope{UserID: "user-2"}
		err := uc.HandleCallback(context.Background(), other, model.PlatformLinear, "good-code", state)
		if !errors.Is(err, integration.ErrInvalidState) {
			t.Fatalf("err = %v, want ErrInvalidState", err)
		}
	})

	t.Run("state is single use", func(t *testing.T) {
		uc := newUC(newMockRepo())
		state := issueState(t, uc, testScope, model.PlatformLinear)

		if err := uc.HandleCallback(context.Background(), testScope, model.PlatformLinear, "good-code", state); err != nil {
			t.Fatalf("first callback: %v", err)
		}
		err := uc.HandleCallback(context.Background(), testScope, model.PlatformLinear, "good-code", state)
		if !errors.Is(err, integration.ErrInvalidState) {
			t.Fatalf("err = %v, want ErrInvalidState", err)
		}
	})

	t.Run("exchange failure surfaces as ErrExchangeFailed", func(t *testing.T) {
		uc := newUC(newMockRepo())
		state := issueState(t, uc, testScope, model.PlatformLinear)

		err := uc.HandleCallback(context.Background(), testScope, model.PlatformLinear, "bad-code", state)
		if !errors.Is(err, integration.ErrExchangeFailed) {
			t.Fatalf("err = %v, want ErrExchangeFailed", err)
		}
	})
}

func TestStatusAndToken(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo)

	t.Run("nothing connected", func(t *testing.T) {
		out, err := uc.Status(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Platforms) != 2 {
			t.Fatalf("platforms = %d, want 2", len(out.Platforms))
		}
		for _, st := range out.Platforms {
			if st.Connected {
				t.Errorf("%s reported connected", st.Platform)
			}
		}
	})

	t.Run("token for unconnected platform", func(t *testing.T) {
		_, err := uc.Token(context.Background(), testScope, model.PlatformJira)
		if !errors.Is(err, integration.ErrNotConnected) {
			t.Fatalf("err = %v, want ErrNotConnected", err)
		}
	})

	t.Run("connected platform reported", func(t *testing.T) {
		if err := uc.SaveToken(context.Background(), testScope, model.PlatformJira, "at", "rt", time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("SaveToken: %v", err)
		}
		out, err := uc.Status(context.Background(), testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var jiraConnected bool
		for _, st := range out.Platforms {
			if st.Platform == model.PlatformJira && st.Connected {
				jiraConnected = true
			}
		}
		if !jiraConnected {
			t.Error("jira not reported connected after SaveToken")
		}
	})
}
