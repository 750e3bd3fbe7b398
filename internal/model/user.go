package model

import "fmt"

// Role decides which dashboard and which gated pages a user sees.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// ParseRole maps s onto a Role. An empty string defaults to RoleJobSeeker,
// matching the login form's preselected tab.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleJobSeeker, nil
	case RoleJobSeeker, RoleEmployer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the account attached to a session.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Title     string   `json:"title,omitempty"`
	Location  string   `json:"location,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Website   string   `json:"website,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	IsPremium bool     `json:"isPremium,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
}

// Experience is one row of a profile's work history.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one row of a profile's schooling.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}
