package ai

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"text/template"
)

// Messages shown in place of generated text. Callers never see an error.
const (
	FallbackError       = "Error generating content. Please check your API key."
	FallbackDescription = "Failed to generate description."
	FallbackCoverLetter = "Failed to generate cover letter."
)

// DefaultCandidateSkills is used for a cover letter when the caller supplies none.
const DefaultCandidateSkills = "React, TypeScript, Frontend Development"

// Generator drafts job descriptions and cover letters. Each call renders a
// prompt and forwards it to the provider once: no retries, no rate limiting.
type Generator struct {
	provider  Provider
	descTmpl  *template.Template
	coverTmpl *template.Template
	logger    *slog.Logger
}

// NewGenerator returns a generator using the embedded prompt templates.
func NewGenerator(provider Provider, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		provider:  provider,
		descTmpl:  JobDescriptionTemplate,
		coverTmpl: CoverLetterTemplate,
		logger:    logger,
	}
}

// JobDescription drafts a Markdown job description for title requiring skills.
func (g *Generator) JobDescription(ctx context.Context, title, skills string) string {
	return g.generate(ctx, "job_description", g.descTmpl, JobDescriptionInput{
		Title:  title,
		Skills: skills,
	}, FallbackDescription)
}

// CoverLetter drafts a cover letter for jobTitle at company. Empty skills
// are replaced by DefaultCandidateSkills.
func (g *Generator) CoverLetter(ctx context.Context, jobTitle, company, skills string) string {
	if strings.TrimSpace(skills) == "" {
		skills = DefaultCandidateSkills
	}
	return g.generate(ctx, "cover_letter", g.coverTmpl, CoverLetterInput{
		JobTitle: jobTitle,
		Company:  company,
		Skills:   skills,
	}, FallbackCoverLetter)
}

func (g *Generator) generate(ctx context.Context, kind string, tmpl *template.Template, data any, emptyFallback string) string {
	var prompt bytes.Buffer
	if err := tmpl.Execute(&prompt, data); err != nil {
		g.logger.Error("render prompt failed", "kind", kind, "error", err)
		return FallbackError
	}

	text, err := g.provider.Complete(ctx, prompt.String())
	if err != nil {
		g.logger.Error("content generation failed", "kind", kind, "error", err)
		return FallbackError
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn("content generation returned no text", "kind", kind)
		return emptyFallback
	}

	g.logger.Debug("content generated", "kind", kind, "chars", len(text))
	return text
}
