package auth

import (
	"github.com/google/uuid"

	"github.com/amishk599/careerconnect/internal/model"
)

// DemoUser is the account every login resolves to.
func DemoUser(role model.Role, email string) model.User {
	title := "Senior Frontend Engineer"
	if role == model.RoleEmployer {
		title = "HR Manager"
	}
	return model.User{
		ID:        "u1",
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Role:      role,
		Title:     title,
		Location:  "New York, USA",
		IsPremium: true,
		Skills:    []string{"React", "TypeScript", "Tailwind", "Node.js"},
	}
}

// NewUser simulates a registration. The form contents are not used.
func NewUser(role model.Role) model.User {
	title := "Fresher"
	if role == model.RoleEmployer {
		title = "Recruiter"
	}
	return model.User{
		ID:        uuid.NewString(),
		FirstName: "New",
		LastName:  "User",
		Email:     "newuser@example.com",
		Role:      role,
		Title:     title,
		Location:  "Remote",
	}
}

// CanPostJobs reports whether user may post jobs and draft job descriptions.
func CanPostJobs(user model.User) bool {
	return user.Role == model.RoleEmployer
}
