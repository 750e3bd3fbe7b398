package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/amishk599/careerconnect/internal/model"
)

func TestLogNotifier_JobPosted(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := n.Notify(context.Background(), jobEvent("Engineer", "Acme")); err != nil {
		t.Fatalf("Notify() = %v, want nil", err)
	}
	out := buf.String()
	for _, want := range []string{"kind=job_posted", "title=Engineer", "company=Acme", "actor=hr@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestLogNotifier_ApplicationSubmitted(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	ev := model.Event{
		Kind:        model.EventApplicationSubmitted,
		Application: &model.Application{JobID: "2", JobTitle: "Designer", Status: model.StatusPending},
	}
	if err := n.Notify(context.Background(), ev); err != nil {
		t.Fatalf("Notify() = %v, want nil", err)
	}
	if out := buf.String(); !strings.Contains(out, "status=Pending") {
		t.Errorf("log output missing status: %s", out)
	}
}

func TestLogNotifier_EmptyEvent(t *testing.T) {
	n := NewLogNotifier(discardLogger())
	if err := n.Notify(context.Background(), model.Event{}); err != nil {
		t.Errorf("Notify(empty) = %v, want nil", err)
	}
}
