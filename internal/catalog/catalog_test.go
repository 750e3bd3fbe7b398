package catalog

import "testing"

func TestJobs_ReturnsFreshCopy(t *testing.T) {
	a := Jobs()
	a[0].Title = "mutated"
	a[0].Requirements[0] = "mutated"

	b := Jobs()
	if b[0].Title != "Senior React Engineer" {
		t.Errorf("Title = %q, seed was mutated through a previous copy", b[0].Title)
	}
	if b[0].Requirements[0] != "React" {
		t.Errorf("Requirements[0] = %q, seed was mutated through a previous copy", b[0].Requirements[0])
	}
}

func TestSeedSizes(t *testing.T) {
	if n := len(Jobs()); n != 4 {
		t.Errorf("len(Jobs()) = %d, want 4", n)
	}
	if n := len(Projects()); n != 3 {
		t.Errorf("len(Projects()) = %d, want 3", n)
	}
	if n := len(Applications()); n != 3 {
		t.Errorf("len(Applications()) = %d, want 3", n)
	}
	if n := len(Plans()); n != 3 {
		t.Errorf("len(Plans()) = %d, want 3", n)
	}
}

func TestPlans_OnlyPremiumHighlighted(t *testing.T) {
	for _, p := range Plans() {
		if p.Highlighted != (p.Name == "Premium") {
			t.Errorf("plan %s highlighted = %v", p.Name, p.Highlighted)
		}
	}
}
