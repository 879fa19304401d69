package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskscribe/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not propagated")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Candidates) != 1 || resp.Candidates[0].Content.Parts[0].Text != "hello" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status in error, got: %v", err)
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)

	_, err := client.GenerateText(context.Background(), "prompt", nil)
	if err == nil {
		t.Fatal("expected error on empty candidates")
	}
}
