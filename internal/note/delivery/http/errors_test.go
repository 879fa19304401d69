package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskscribe/internal/middleware"
	"taskscribe/internal/model"
	"taskscribe/internal/note"
	"taskscribe/pkg/response"
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

// failingUseCase returns a fixed error from every operation.
type failingUseCase struct {
	err error
}

func (f *failingUseCase) Segment(ctx context.Context, sc model.Scope, input note.SegmentInput) (note.SegmentOutput, error) {
	return note.SegmentOutput{}, f.err
}

func (f *failingUseCase) Extract(ctx context.Context, sc model.Scope, input note.ExtractInput) (note.ExtractOutput, error) {
	return note.ExtractOutput{}, f.err
}

func (f *failingUseCase) Autocomplete(ctx context.Context, sc model.Scope, text string) (string, error) {
	return "", f.err
}

func (f *failingUseCase) GenerateTitle(ctx context.Context, sc model.Scope, text string) (string, error) {
	return "", f.err
}

func extractThrough(t *testing.T, ucErr error) (int, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(noopLogger{}, &failingUseCase{err: ucErr})
	router := gin.New()
	router.POST("/notes/extract", func(c *gin.Context) {
		middleware.SetScope(c, model.Scope{UserID: "u1"})
		h.Extract(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes/extract",
		strings.NewReader(`{"text":"quarterly notes"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return w.Code, resp
}

func TestMapErrorWrappedSentinels(t *testing.T) {
	// The usecase wraps sentinels with call detail, so the mapping must
	// match through the chain, not on equality.
	t.Run("wrapped LLM failure keeps its message", func(t *testing.T) {
		code, resp := extractThrough(t, fmt.Errorf("%w: upstream 500", note.ErrLLMUnavailable))
		if code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", code)
		}
		if resp.Message != "text processing failed" {
			t.Errorf("message = %q, want %q", resp.Message, "text processing failed")
		}
	})

	t.Run("wrapped bad output keeps its message", func(t *testing.T) {
		code, resp := extractThrough(t, fmt.Errorf("%w: not json", note.ErrBadLLMOutput))
		if code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", code)
		}
		if resp.Message != "text processing failed" {
			t.Errorf("message = %q, want %q", resp.Message, "text processing failed")
		}
	})

	t.Run("bare validation sentinel still maps to 400", func(t *testing.T) {
		code, resp := extractThrough(t, note.ErrEmptyInput)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
		if resp.Message != "text is empty" {
			t.Errorf("message = %q, want %q", resp.Message, "text is empty")
		}
	})
}
