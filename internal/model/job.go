package model

import (
	"context"
	"fmt"
	"time"
)

// JobType is the employment category of a listing.
type JobType string

const (
	FullTime   JobType = "Full-time"
	PartTime   JobType = "Part-time"
	Contract   JobType = "Contract"
	Freelance  JobType = "Freelance"
	Internship JobType = "Internship"
	Remote     JobType = "Remote"
)

// AllTypes is the filter wildcard. It is not a valid JobType.
const AllTypes = "All"

// JobTypes returns every JobType in display order.
func JobTypes() []JobType {
	return []JobType{FullTime, PartTime, Contract, Freelance, Internship, Remote}
}

// ParseJobType maps s onto a JobType. Matching is exact.
func ParseJobType(s string) (JobType, error) {
	for _, t := range JobTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// Job is a single listing on the board.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Type            JobType   `json:"type"`
	SalaryRange     string    `json:"salaryRange"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	PostedAt        string    `json:"postedAt"` // display label, e.g. "2 days ago"
	LogoURL         string    `json:"logoUrl,omitempty"`
	ApplicantsCount int       `json:"applicantsCount,omitempty"`
	CreatedAt       time.Time `json:"-"`
}

// JobStore holds the listings shown on the board, newest first.
type JobStore interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (Job, error)
	// AddJob prepends job so it becomes the first listing.
	AddJob(ctx context.Context, job Job) error
	CountJobs(ctx context.Context) (int, error)
}
