package model

import (
	"context"
	"fmt"
)

// ApplicationStatus is where an application sits in the hiring pipeline.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusInterview ApplicationStatus = "Interview"
	StatusAccepted  ApplicationStatus = "Accepted"
	StatusRejected  ApplicationStatus = "Rejected"
)

// ParseApplicationStatus maps s onto an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case StatusPending, StatusInterview, StatusAccepted, StatusRejected:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Application records a job seeker applying to a listing. JobID is never
// checked against the job store, and duplicates are allowed.
type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	CompanyName    string            `json:"companyName"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    string            `json:"appliedDate"` // YYYY-MM-DD
	CoverLetter    string            `json:"coverLetter,omitempty"`
	ApplicantEmail string            `json:"applicantEmail,omitempty"`
}

// ApplicationStore holds submitted applications, newest first.
type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]Application, error)
	AddApplication(ctx context.Context, a Application) error
}
