package store

import (
	"context"
	"slices"
	"sync"

	"github.com/amishk599/careerconnect/internal/catalog"
	"github.com/amishk599/careerconnect/internal/model"
)

var (
	_ model.JobStore         = (*MemoryStore)(nil)
	_ model.ProjectStore     = (*MemoryStore)(nil)
	_ model.ApplicationStore = (*MemoryStore)(nil)
)

// MemoryStore keeps every record in process memory. Nothing survives a
// restart, which is how the board behaves with no database configured.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         []model.Job
	projects     []model.Project
	applications []model.Application
}

// NewMemoryStore returns an empty store, or one holding the catalog when seed is true.
func NewMemoryStore(seed bool) *MemoryStore {
	s := &MemoryStore{
		jobs:         []model.Job{},
		projects:     []model.Project{},
		applications: []model.Application{},
	}
	if seed {
		s.jobs = catalog.Jobs()
		s.projects = catalog.Projects()
		s.applications = catalog.Applications()
	}
	return s
}

func (s *MemoryStore) ListJobs(_ context.Context) ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs), nil
}

func (s *MemoryStore) GetJob(_ context.Context, id string) (model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return model.Job{}, model.ErrNotFound
}

// AddJob prepends job.
func (s *MemoryStore) AddJob(_ context.Context, job model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = slices.Insert(s.jobs, 0, job)
	return nil
}

func (s *MemoryStore) CountJobs(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), nil
}

func (s *MemoryStore) ListProjects(_ context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects), nil
}

// AddProject prepends p.
func (s *MemoryStore) AddProject(_ context.Context, p model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = slices.Insert(s.projects, 0, p)
	return nil
}

func (s *MemoryStore) ListApplications(_ context.Context) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.applications), nil
}

// AddApplication prepends a.
func (s *MemoryStore) AddApplication(_ context.Context, a model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = slices.Insert(s.applications, 0, a)
	return nil
}

// Close is a no-op so MemoryStore and SQLiteStore are interchangeable.
func (s *MemoryStore) Close() error { return nil }
