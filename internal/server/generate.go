package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type jobDescriptionRequest struct {
	Title  string `json:"title" binding:"required"`
	Skills string `json:"skills"`
}

type coverLetterRequest struct {
	JobTitle string `json:"job_title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Skills   string `json:"skills"`
}

type jobCoverLetterRequest struct {
	Skills string `json:"skills"`
}

// withGuard runs gen while holding the caller's pending slot. A second call
// from the same caller gets 409 until the first returns.
func (s *Server) withGuard(c *gin.Context, gen func() string) {
	release, ok := s.guard.Acquire(guardKey(c))
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "generation already in progress"})
		return
	}
	defer release()
	c.JSON(http.StatusOK, gin.H{"content": gen()})
}

func (s *Server) jobDescription(c *gin.Context) {
	var req jobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	s.withGuard(c, func() string {
		return s.generator.JobDescription(c.Request.Context(), req.Title, req.Skills)
	})
}

func (s *Server) coverLetter(c *gin.Context) {
	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	s.withGuard(c, func() string {
		return s.generator.CoverLetter(c.Request.Context(), req.JobTitle, req.Company, req.Skills)
	})
}

func (s *Server) jobCoverLetter(c *gin.Context) {
	var req jobCoverLetterRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	job, ok := s.lookupJob(c)
	if !ok {
		return
	}
	s.withGuard(c, func() string {
		return s.generator.CoverLetter(c.Request.Context(), job.Title, job.Company, req.Skills)
	})
}
