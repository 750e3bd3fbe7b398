package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/amishk599/careerconnect/internal/model"
)

type boardStore interface {
	model.JobStore
	model.ProjectStore
	model.ApplicationStore
}

func newTestSQLiteStore(t *testing.T, seed bool) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath, seed)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// forEachStore runs fn against both backends so they stay interchangeable.
func forEachStore(t *testing.T, seed bool, fn func(t *testing.T, s boardStore)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore(seed)) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newTestSQLiteStore(t, seed)) })
}

func TestSeededStoreKeepsCatalogOrder(t *testing.T) {
	forEachStore(t, true, func(t *testing.T, s boardStore) {
		ctx := context.Background()
		jobs, err := s.ListJobs(ctx)
		if err != nil {
			t.Fatalf("ListJobs: %v", err)
		}
		if len(jobs) != 4 {
			t.Fatalf("len(jobs) = %d, want 4", len(jobs))
		}
		for i, want := range []string{"1", "2", "3", "4"} {
			if jobs[i].ID != want {
				t.Errorf("jobs[%d].ID = %s, want %s", i, jobs[i].ID, want)
			}
		}
		if len(jobs[0].Requirements) != 4 || jobs[0].Requirements[0] != "React" {
			t.Errorf("jobs[0].Requirements = %v", jobs[0].Requirements)
		}

		projects, err := s.ListProjects(ctx)
		if err != nil {
			t.Fatalf("ListProjects: %v", err)
		}
		if len(projects) != 3 || projects[0].Stats.Views != 1200 {
			t.Errorf("projects = %+v", projects)
		}

		apps, err := s.ListApplications(ctx)
		if err != nil {
			t.Fatalf("ListApplications: %v", err)
		}
		if len(apps) != 3 || apps[0].Status != model.StatusInterview {
			t.Errorf("applications = %+v", apps)
		}
	})
}

func TestAddJobPrependsExactlyOne(t *testing.T) {
	forEachStore(t, true, func(t *testing.T, s boardStore) {
		ctx := context.Background()
		before, _ := s.CountJobs(ctx)

		job := model.Job{
			ID:           "new-1",
			Title:        "Go Engineer",
			Company:      "Demo Company Inc.",
			Type:         model.FullTime,
			Requirements: []string{"Go", "SQL"},
			PostedAt:     "Just now",
			CreatedAt:    time.Unix(1700000000, 0),
		}
		if err := s.AddJob(ctx, job); err != nil {
			t.Fatalf("AddJob: %v", err)
		}

		after, _ := s.CountJobs(ctx)
		if after != before+1 {
			t.Errorf("CountJobs = %d, want %d", after, before+1)
		}

		jobs, err := s.ListJobs(ctx)
		if err != nil {
			t.Fatalf("ListJobs: %v", err)
		}
		if jobs[0].ID != "new-1" {
			t.Errorf("jobs[0].ID = %s, want new-1", jobs[0].ID)
		}
		if jobs[1].ID != "1" {
			t.Errorf("jobs[1].ID = %s, want previous head 1", jobs[1].ID)
		}
		if !jobs[0].CreatedAt.Equal(job.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", jobs[0].CreatedAt, job.CreatedAt)
		}
	})
}

func TestGetJob(t *testing.T) {
	forEachStore(t, true, func(t *testing.T, s boardStore) {
		ctx := context.Background()
		j, err := s.GetJob(ctx, "3")
		if err != nil {
			t.Fatalf("GetJob(3): %v", err)
		}
		if j.Company != "DataCorp" || j.Type != model.Contract {
			t.Errorf("GetJob(3) = %+v", j)
		}

		_, err = s.GetJob(ctx, "missing")
		if !errors.Is(err, model.ErrNotFound) {
			t.Errorf("GetJob(missing) err = %v, want ErrNotFound", err)
		}
	})
}

func TestAddProjectAndApplicationPrepend(t *testing.T) {
	forEachStore(t, false, func(t *testing.T, s boardStore) {
		ctx := context.Background()
		for _, id := range []string{"p1", "p2"} {
			if err := s.AddProject(ctx, model.Project{ID: id, Title: id, Technologies: []string{"Go"}}); err != nil {
				t.Fatalf("AddProject: %v", err)
			}
		}
		projects, _ := s.ListProjects(ctx)
		if len(projects) != 2 || projects[0].ID != "p2" {
			t.Errorf("projects = %+v, want p2 first", projects)
		}

		// Duplicate applications for the same job are allowed.
		for _, id := range []string{"a1", "a2"} {
			app := model.Application{ID: id, JobID: "1", Status: model.StatusPending, AppliedDate: "2026-01-01"}
			if err := s.AddApplication(ctx, app); err != nil {
				t.Fatalf("AddApplication: %v", err)
			}
		}
		apps, _ := s.ListApplications(ctx)
		if len(apps) != 2 || apps[0].ID != "a2" {
			t.Errorf("applications = %+v, want a2 first", apps)
		}
	})
}

func TestUnseededStoreIsEmpty(t *testing.T) {
	forEachStore(t, false, func(t *testing.T, s boardStore) {
		jobs, err := s.ListJobs(context.Background())
		if err != nil {
			t.Fatalf("ListJobs: %v", err)
		}
		if jobs == nil || len(jobs) != 0 {
			t.Errorf("ListJobs = %v, want empty non-nil", jobs)
		}
	})
}

func TestSQLiteSeedIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")

	first, err := NewSQLiteStore(dbPath, true)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.AddJob(context.Background(), model.Job{ID: "x", Title: "X", Company: "Y", Type: model.Remote}); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	first.Close()

	second, err := NewSQLiteStore(dbPath, true)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	n, err := second.CountJobs(context.Background())
	if err != nil {
		t.Fatalf("CountJobs: %v", err)
	}
	if n != 5 {
		t.Errorf("CountJobs = %d, want 5 (4 seeded once + 1 added)", n)
	}
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	s := NewMemoryStore(true)
	jobs, _ := s.ListJobs(context.Background())
	jobs[0] = model.Job{ID: "clobbered"}

	again, _ := s.ListJobs(context.Background())
	if again[0].ID != "1" {
		t.Errorf("ListJobs()[0].ID = %s, caller mutation leaked into the store", again[0].ID)
	}
}
