package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amishk599/careerconnect/internal/filter"
	"github.com/amishk599/careerconnect/internal/model"
)

// Defaults applied to a posted job when the employer leaves a field out.
const (
	defaultCompany  = "Demo Company Inc."
	defaultLocation = "Remote"
	defaultSalary   = "$Competitive"
	defaultPostedAt = "Just now"
	defaultLogoURL  = "https://picsum.photos/48/48"
)

type postJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Skills      string `json:"skills"` // comma-separated
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	SalaryRange string `json:"salaryRange"`
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

func (s *Server) jobTypes(c *gin.Context) {
	types := []string{model.AllTypes}
	for _, t := range model.JobTypes() {
		types = append(types, string(t))
	}
	c.JSON(http.StatusOK, gin.H{"types": types})
}

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.jobs.ListJobs(c.Request.Context())
	if err != nil {
		s.internalError(c, "list jobs", err)
		return
	}
	matched := filter.FilterJobs(jobs, c.Query("q"), c.DefaultQuery("type", model.AllTypes))
	c.JSON(http.StatusOK, gin.H{"jobs": matched, "count": len(matched)})
}

func (s *Server) getJob(c *gin.Context) {
	job, ok := s.lookupJob(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, job)
}

// lookupJob loads the job named by the :id path parameter, writing a 404 or
// 500 response when it cannot.
func (s *Server) lookupJob(c *gin.Context) (model.Job, bool) {
	job, err := s.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return model.Job{}, false
	}
	if err != nil {
		s.internalError(c, "get job", err)
		return model.Job{}, false
	}
	return job, true
}

func (s *Server) postJob(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	jobType := model.FullTime
	if req.Type != "" {
		t, err := model.ParseJobType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		jobType = t
	}

	job := model.Job{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Company:      orDefault(req.Company, defaultCompany),
		Location:     orDefault(req.Location, defaultLocation),
		Type:         jobType,
		SalaryRange:  orDefault(req.SalaryRange, defaultSalary),
		Description:  req.Description,
		Requirements: splitList(req.Skills),
		PostedAt:     defaultPostedAt,
		LogoURL:      defaultLogoURL,
		CreatedAt:    s.now(),
	}
	if err := s.jobs.AddJob(c.Request.Context(), job); err != nil {
		s.internalError(c, "add job", err)
		return
	}
	s.logger.Info("job posted", "id", job.ID, "title", job.Title)
	s.notify(c.Request.Context(), model.Event{Kind: model.EventJobPosted, Job: &job, Actor: currentUser(c).Email})
	c.JSON(http.StatusCreated, job)
}

func (s *Server) apply(c *gin.Context) {
	var req applyRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	job, ok := s.lookupJob(c)
	if !ok {
		return
	}

	user := currentUser(c)
	app := model.Application{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		JobTitle:       job.Title,
		CompanyName:    job.Company,
		Status:         model.StatusPending,
		AppliedDate:    s.now().Format("2006-01-02"),
		CoverLetter:    req.CoverLetter,
		ApplicantEmail: user.Email,
	}
	if err := s.applications.AddApplication(c.Request.Context(), app); err != nil {
		s.internalError(c, "add application", err)
		return
	}
	s.logger.Info("application submitted", "job_id", job.ID, "applicant", user.Email)
	s.notify(c.Request.Context(), model.Event{Kind: model.EventApplicationSubmitted, Application: &app, Actor: user.Email})
	c.JSON(http.StatusCreated, app)
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.logger.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": op + " failed"})
}

// splitList splits a comma-separated form value, trimming blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
