// Package browse is the terminal job browser: a type picker, a searchable
// listing and a detail view with an AI cover letter assistant.
package browse

import (
	"context"
	"fmt"

	"github.com/amishk599/careerconnect/internal/filter"
	"github.com/amishk599/careerconnect/internal/model"
)

// Options configure a browsing session.
type Options struct {
	Jobs model.JobStore
	// Applications receives submitted applications. Nil hides the apply key.
	Applications model.ApplicationStore
	// Generator drafts cover letters. Nil disables drafting.
	Generator      CoverLetterGenerator
	ApplicantEmail string
	Skills         string // empty uses the generator's default
}

// JobTypeChoices returns the picker entries: the wildcard first, then every job type.
func JobTypeChoices() []string {
	choices := []string{model.AllTypes}
	for _, t := range model.JobTypes() {
		choices = append(choices, string(t))
	}
	return choices
}

// Run loops picker → loader → browser until the user quits.
func Run(ctx context.Context, opts Options) error {
	for {
		jobType, ok, err := RunTypePicker(JobTypeChoices())
		if err != nil {
			return fmt.Errorf("type picker: %w", err)
		}
		if !ok {
			return nil
		}

		jobs, err := RunLoader(ctx, "Loading "+jobType+" jobs", func(ctx context.Context) ([]model.Job, error) {
			all, err := opts.Jobs.ListJobs(ctx)
			if err != nil {
				return nil, err
			}
			return filter.FilterJobs(all, "", jobType), nil
		})
		if err != nil {
			return fmt.Errorf("load jobs: %w", err)
		}

		wantQuit, err := RunBrowser(ctx, jobs, jobType, opts)
		if err != nil {
			return fmt.Errorf("browser: %w", err)
		}
		if wantQuit {
			return nil
		}
		// else: loop → back to picker
	}
}
