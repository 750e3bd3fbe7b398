package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amishk599/careerconnect/internal/ai"
	"github.com/amishk599/careerconnect/internal/assistant"
	"github.com/amishk599/careerconnect/internal/auth"
	"github.com/amishk599/careerconnect/internal/model"
)

// notifyTimeout bounds a single notifier call made on behalf of a request.
const notifyTimeout = 5 * time.Second

// Deps holds everything the API needs. Jobs, Projects, Applications,
// Sessions and Generator are required.
type Deps struct {
	Jobs         model.JobStore
	Projects     model.ProjectStore
	Applications model.ApplicationStore
	Sessions     *auth.Sessions
	Generator    *ai.Generator
	Notifier     model.Notifier // nil disables notifications
	Logger       *slog.Logger
	CORSOrigins  []string // empty allows every origin
}

// Server is the Career Connect JSON API.
type Server struct {
	jobs         model.JobStore
	projects     model.ProjectStore
	applications model.ApplicationStore
	sessions     *auth.Sessions
	generator    *ai.Generator
	guard        *assistant.PendingGuard
	notifier     model.Notifier
	logger       *slog.Logger
	now          func() time.Time
	engine       *gin.Engine
}

// New builds the server and its route table.
func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		jobs:         d.Jobs,
		projects:     d.Projects,
		applications: d.Applications,
		sessions:     d.Sessions,
		generator:    d.Generator,
		guard:        assistant.NewPendingGuard(),
		notifier:     d.Notifier,
		logger:       logger,
		now:          time.Now,
	}
	s.engine = s.routes(d.CORSOrigins)
	return s
}

// Handler returns the http.Handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), cors.New(corsConfig(origins)))

	api := r.Group("/api/v1")
	{
		api.GET("/health", s.health)
		api.GET("/job-types", s.jobTypes)
		api.GET("/jobs", s.listJobs)
		api.GET("/jobs/:id", s.getJob)
		api.GET("/projects", s.listProjects)
		api.GET("/premium", s.premium)

		api.POST("/auth/login", s.login)
		api.POST("/auth/register", s.register)
		api.POST("/auth/logout", s.logout)
	}

	visitor := api.Group("", s.identify)
	{
		visitor.POST("/jobs/:id/apply", s.apply)
		visitor.POST("/jobs/:id/cover-letter", s.jobCoverLetter)
		visitor.POST("/ai/cover-letter", s.coverLetter)
	}

	user := api.Group("", s.requireUser)
	{
		user.GET("/me", s.me)
		user.GET("/dashboard", s.dashboard)
		user.GET("/profile", s.profile)
		user.POST("/projects", s.addProject)
	}

	employer := user.Group("", requireEmployer)
	{
		employer.POST("/jobs", s.postJob)
		employer.POST("/ai/job-description", s.jobDescription)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return cfg
}

// notify hands ev to the notifier. Failures are logged and never reach the caller.
func (s *Server) notify(ctx context.Context, ev model.Event) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(ctx, ev); err != nil {
		s.logger.Error("notification failed", "kind", string(ev.Kind), "error", err)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
