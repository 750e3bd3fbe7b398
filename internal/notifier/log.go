package notifier

import (
	"context"
	"log/slog"

	"github.com/amishk599/careerconnect/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes board events to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each event via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the event. It never fails.
func (n *LogNotifier) Notify(_ context.Context, ev model.Event) error {
	args := []any{"kind", string(ev.Kind)}
	if ev.Actor != "" {
		args = append(args, "actor", ev.Actor)
	}
	switch {
	case ev.Job != nil:
		args = append(args, "job_id", ev.Job.ID, "title", ev.Job.Title, "company", ev.Job.Company)
	case ev.Application != nil:
		args = append(args, "job_id", ev.Application.JobID, "title", ev.Application.JobTitle,
			"company", ev.Application.CompanyName, "status", string(ev.Application.Status))
	}
	n.logger.Info("board event", args...)
	return nil
}
