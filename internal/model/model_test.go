package model

import (
	"errors"
	"testing"
)

func TestJobTypes_SixInOrder(t *testing.T) {
	types := JobTypes()
	want := []JobType{FullTime, PartTime, Contract, Freelance, Internship, Remote}
	if len(types) != len(want) {
		t.Fatalf("len(JobTypes()) = %d, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("JobTypes()[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestParseJobType(t *testing.T) {
	if got, err := ParseJobType("Contract"); err != nil || got != Contract {
		t.Errorf("ParseJobType(Contract) = %q, %v", got, err)
	}
	if _, err := ParseJobType("All"); err == nil {
		t.Error("ParseJobType(All): expected error, All is only a filter wildcard")
	}
	if _, err := ParseJobType("full-time"); err == nil {
		t.Error("ParseJobType(full-time): expected error for wrong case")
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"", RoleJobSeeker, false},
		{"jobseeker", RoleJobSeeker, false},
		{"employer", RoleEmployer, false},
		{"admin", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Interview", "Accepted", "Rejected"} {
		if _, err := ParseApplicationStatus(s); err != nil {
			t.Errorf("ParseApplicationStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseApplicationStatus("Withdrawn"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestHTTPError_Unwrap(t *testing.T) {
	inner := errors.New("quota exceeded")
	err := &HTTPError{StatusCode: 429, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see wrapped error")
	}
	if err.Error() != "HTTP 429: quota exceeded" {
		t.Errorf("Error() = %q", err.Error())
	}
}
