package model

import "context"

// EventKind identifies what happened on the board.
type EventKind string

const (
	EventJobPosted            EventKind = "job_posted"
	EventApplicationSubmitted EventKind = "application_submitted"
)

// Event is a board activity worth telling someone about. Job is set for
// EventJobPosted, Application for EventApplicationSubmitted.
type Event struct {
	Kind        EventKind
	Job         *Job
	Application *Application
	Actor       string
}

// Notifier delivers board events to an external channel.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}
