package ai

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/job_description.md
var jobDescriptionPromptRaw string

//go:embed prompts/cover_letter.md
var coverLetterPromptRaw string

// Parsed once at package init; reused on every generation.
var (
	JobDescriptionTemplate = template.Must(template.New("job_description").Parse(jobDescriptionPromptRaw))
	CoverLetterTemplate    = template.Must(template.New("cover_letter").Parse(coverLetterPromptRaw))
)

// JobDescriptionInput fills JobDescriptionTemplate.
type JobDescriptionInput struct {
	Title  string
	Skills string
}

// CoverLetterInput fills CoverLetterTemplate.
type CoverLetterInput struct {
	JobTitle string
	Company  string
	Skills   string
}
