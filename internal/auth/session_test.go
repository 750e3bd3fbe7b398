package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/amishk599/careerconnect/internal/model"
)

func TestLogin_ReturnsDemoUserPerRole(t *testing.T) {
	s := NewSessions(time.Hour)

	token, user := s.Login(model.RoleJobSeeker, "jane@example.com")
	if token == "" {
		t.Fatal("empty token")
	}
	if user.ID != "u1" || user.FirstName != "John" || user.Email != "jane@example.com" {
		t.Errorf("user = %+v", user)
	}
	if user.Title != "Senior Frontend Engineer" || !user.IsPremium {
		t.Errorf("job seeker title/premium = %q/%v", user.Title, user.IsPremium)
	}

	_, employer := s.Login(model.RoleEmployer, "hr@example.com")
	if employer.Title != "HR Manager" {
		t.Errorf("employer title = %q, want HR Manager", employer.Title)
	}
}

func TestRegister_SimulatedUser(t *testing.T) {
	s := NewSessions(time.Hour)

	_, seeker := s.Register(model.RoleJobSeeker)
	_, employer := s.Register(model.RoleEmployer)

	if seeker.Title != "Fresher" || employer.Title != "Recruiter" {
		t.Errorf("titles = %q / %q", seeker.Title, employer.Title)
	}
	if seeker.Email != "newuser@example.com" || seeker.Location != "Remote" {
		t.Errorf("seeker = %+v", seeker)
	}
	if seeker.ID == employer.ID {
		t.Error("registered users should get distinct ids")
	}
}

func TestLookupAndLogout(t *testing.T) {
	s := NewSessions(time.Hour)
	token, _ := s.Login(model.RoleEmployer, "a@b.c")

	user, err := s.Lookup(token)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if user.Role != model.RoleEmployer {
		t.Errorf("role = %s", user.Role)
	}

	s.Logout(token)
	if _, err := s.Lookup(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Lookup after logout err = %v, want ErrNoSession", err)
	}
	s.Logout("never-issued")
}

func TestLookup_ExpiredSessionIsDropped(t *testing.T) {
	s := NewSessions(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token, _ := s.Login(model.RoleJobSeeker, "a@b.c")

	now = now.Add(59 * time.Second)
	if _, err := s.Lookup(token); err != nil {
		t.Fatalf("Lookup before expiry: %v", err)
	}

	now = now.Add(time.Second)
	if _, err := s.Lookup(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Lookup at expiry err = %v, want ErrNoSession", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, expired session should be removed", s.Len())
	}
}

func TestCanPostJobs(t *testing.T) {
	if CanPostJobs(DemoUser(model.RoleJobSeeker, "x")) {
		t.Error("job seekers must not post jobs")
	}
	if !CanPostJobs(DemoUser(model.RoleEmployer, "x")) {
		t.Error("employers may post jobs")
	}
}
