package filter

import (
	"strings"

	"github.com/amishk599/careerconnect/internal/model"
)

// JobFilter matches listings whose title or company contains Query and whose
// type equals Type. Matching is case-insensitive. An empty Query passes all;
// an empty Type or "All" passes every type.
type JobFilter struct {
	Query string
	Type  string
}

// NewJobFilter returns a filter for the search box and type dropdown values.
func NewJobFilter(query, jobType string) JobFilter {
	return JobFilter{Query: query, Type: jobType}
}

// Match reports whether job passes both the query and the type check.
func (f JobFilter) Match(job model.Job) bool {
	q := strings.ToLower(f.Query)
	matchesSearch := strings.Contains(strings.ToLower(job.Title), q) ||
		strings.Contains(strings.ToLower(job.Company), q)
	if !matchesSearch {
		return false
	}
	return f.Type == "" || f.Type == model.AllTypes || string(job.Type) == f.Type
}

// FilterJobs returns the jobs matching query and jobType, in input order.
// The result is never nil so an empty board encodes as [].
func FilterJobs(jobs []model.Job, query, jobType string) []model.Job {
	f := NewJobFilter(query, jobType)
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}

// ProjectFilter matches projects whose title or any technology contains
// Query, case-insensitively.
type ProjectFilter struct {
	Query string
}

// Match reports whether p passes the query.
func (f ProjectFilter) Match(p model.Project) bool {
	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), q) {
			return true
		}
	}
	return false
}

// FilterProjects returns the projects matching query, in input order.
func FilterProjects(projects []model.Project, query string) []model.Project {
	f := ProjectFilter{Query: query}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
