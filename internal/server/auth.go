package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/careerconnect/internal/catalog"
	"github.com/amishk599/careerconnect/internal/model"
)

type loginRequest struct {
	Role  string `json:"role"`
	Email string `json:"email" binding:"required"`
}

type registerRequest struct {
	Role string `json:"role"`
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Stat is one tile on the employer dashboard.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// bindOptionalJSON binds the body into v, accepting an empty body. It writes
// a 400 and reports false on malformed input.
func bindOptionalJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, user := s.sessions.Login(role, req.Email)
	s.logger.Info("login", "role", string(role), "email", user.Email)
	c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, user := s.sessions.Register(role)
	s.logger.Info("register", "role", string(role), "id", user.ID)
	c.JSON(http.StatusCreated, sessionResponse{Token: token, User: user})
}

func (s *Server) logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		s.sessions.Logout(token)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		s.internalError(c, "list jobs", err)
		return
	}
	apps, err := s.applications.ListApplications(ctx)
	if err != nil {
		s.internalError(c, "list applications", err)
		return
	}

	if user.Role == model.RoleEmployer {
		interviews := 0
		for _, a := range apps {
			if a.Status == model.StatusInterview {
				interviews++
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"role": user.Role,
			"user": user,
			"stats": []Stat{
				{Label: "Active Jobs", Value: len(jobs)},
				{Label: "Total Applications", Value: len(apps)},
				{Label: "Interviews Scheduled", Value: interviews},
			},
			"listings": jobs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         user.Role,
		"user":         user,
		"applications": apps,
		"recommended":  jobs[:min(3, len(jobs))],
	})
}

func (s *Server) profile(c *gin.Context) {
	user := currentUser(c)
	skills := user.Skills
	if len(skills) == 0 {
		skills = catalog.DefaultSkills()
	}
	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"experience": catalog.Experience(),
		"education":  catalog.Education(),
		"skills":     skills,
	})
}

func (s *Server) premium(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": catalog.Plans()})
}
