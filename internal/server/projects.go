package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amishk599/careerconnect/internal/filter"
	"github.com/amishk599/careerconnect/internal/model"
)

type addProjectRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Technologies string `json:"technologies"` // comma-separated
	ImageURL     string `json:"imageUrl"`
	Link         string `json:"link"`
}

// projectImageURL is the placeholder cover for a project posted without one.
func projectImageURL(id string) string {
	return "https://picsum.photos/seed/" + id + "/400/200"
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		s.internalError(c, "list projects", err)
		return
	}
	matched := filter.FilterProjects(projects, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"projects": matched, "count": len(matched)})
}

func (s *Server) addProject(c *gin.Context) {
	var req addProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	id := uuid.NewString()
	p := model.Project{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: splitList(req.Technologies),
		ImageURL:     orDefault(req.ImageURL, projectImageURL(id)),
		Link:         req.Link,
	}
	if err := s.projects.AddProject(c.Request.Context(), p); err != nil {
		s.internalError(c, "add project", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
