package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockProvider is a stub Provider that records the prompts it receives.
type mockProvider struct {
	response string
	err      error
	prompts  []string
}

func (m *mockProvider) Complete(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func TestJobDescription_ReturnsProviderText(t *testing.T) {
	p := &mockProvider{response: "## Role Overview\nGreat role."}
	g := NewGenerator(p, nil)

	got := g.JobDescription(context.Background(), "Go Engineer", "Go, SQL")
	if got != "## Role Overview\nGreat role." {
		t.Errorf("JobDescription = %q", got)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("provider called %d times, want exactly 1", len(p.prompts))
	}
	prompt := p.prompts[0]
	if !strings.Contains(prompt, `"Go Engineer" position`) {
		t.Errorf("prompt missing quoted title: %q", prompt)
	}
	if !strings.Contains(prompt, "Key required skills: Go, SQL.") {
		t.Errorf("prompt missing skills: %q", prompt)
	}
	if !strings.Contains(prompt, "Output Format: Markdown.") {
		t.Errorf("prompt missing format instruction: %q", prompt)
	}
}

func TestCoverLetter_PromptCarriesAllFields(t *testing.T) {
	p := &mockProvider{response: "Dear hiring manager"}
	g := NewGenerator(p, nil)

	g.CoverLetter(context.Background(), "Backend Developer", "DataCorp", "Python, Django")

	prompt := p.prompts[0]
	for _, want := range []string{`"Backend Developer"`, `"DataCorp"`, "Python, Django", "under 250 words", `"[Your Name]"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestCoverLetter_DefaultSkills(t *testing.T) {
	p := &mockProvider{response: "ok"}
	g := NewGenerator(p, nil)

	g.CoverLetter(context.Background(), "Engineer", "Acme", "  ")

	if !strings.Contains(p.prompts[0], DefaultCandidateSkills) {
		t.Errorf("prompt should fall back to default skills:\n%s", p.prompts[0])
	}
}

func TestGenerator_ProviderErrorReturnsFallback(t *testing.T) {
	p := &mockProvider{err: errors.New("401 invalid api key")}
	g := NewGenerator(p, nil)

	if got := g.JobDescription(context.Background(), "t", "s"); got != FallbackError {
		t.Errorf("JobDescription = %q, want %q", got, FallbackError)
	}
	if got := g.CoverLetter(context.Background(), "t", "c", "s"); got != FallbackError {
		t.Errorf("CoverLetter = %q, want %q", got, FallbackError)
	}
	if len(p.prompts) != 2 {
		t.Errorf("provider called %d times, want 2 (no retries)", len(p.prompts))
	}
}

func TestGenerator_EmptyTextReturnsKindFallback(t *testing.T) {
	g := NewGenerator(&mockProvider{response: ""}, nil)

	if got := g.JobDescription(context.Background(), "t", "s"); got != FallbackDescription {
		t.Errorf("JobDescription = %q, want %q", got, FallbackDescription)
	}
	if got := g.CoverLetter(context.Background(), "t", "c", "s"); got != FallbackCoverLetter {
		t.Errorf("CoverLetter = %q, want %q", got, FallbackCoverLetter)
	}
}

func TestGenerator_NopProviderFallsBack(t *testing.T) {
	g := NewGenerator(NewNopProvider(), nil)
	if got := g.JobDescription(context.Background(), "t", "s"); got != FallbackError {
		t.Errorf("JobDescription = %q, want %q", got, FallbackError)
	}
}
