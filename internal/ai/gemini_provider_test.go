package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGeminiTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), "test-key", "gemini-2.5-flash", srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p
}

func TestGeminiComplete_Success(t *testing.T) {
	var gotPath, gotBody string
	p := newGeminiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Role Overview: build things."}]},"finishReason":"STOP"}]}`)
	})

	got, err := p.Complete(context.Background(), "write a job description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Role Overview: build things." {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q, want model generateContent endpoint", gotPath)
	}
	if !strings.Contains(gotBody, "write a job description") {
		t.Errorf("request body missing prompt: %s", gotBody)
	}
}

func TestGeminiComplete_ServerError(t *testing.T) {
	p := newGeminiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})

	if _, err := p.Complete(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on 400 response")
	}
}

func TestGeminiComplete_NoCandidatesIsEmptyText(t *testing.T) {
	p := newGeminiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[]}`)
	})

	got, err := p.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
