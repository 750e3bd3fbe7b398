package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/careerconnect/internal/auth"
	"github.com/amishk599/careerconnect/internal/model"
)

const (
	ctxUserKey  = "careerconnect.user"
	ctxTokenKey = "careerconnect.token"
)

// requestLogger logs one line per request once the handler chain returns.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}

// bearerToken extracts the session token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// attachSession stores the session user and token on c when the request
// carries a live bearer token.
func (s *Server) attachSession(c *gin.Context) bool {
	token := bearerToken(c)
	if token == "" {
		return false
	}
	user, err := s.sessions.Lookup(token)
	if err != nil {
		return false
	}
	c.Set(ctxUserKey, user)
	c.Set(ctxTokenKey, token)
	return true
}

// identify attaches the session when there is one. Anonymous requests pass.
func (s *Server) identify(c *gin.Context) {
	s.attachSession(c)
	c.Next()
}

// requireUser aborts with 401 unless the request carries a live session.
func (s *Server) requireUser(c *gin.Context) {
	if !s.attachSession(c) {
		loginRequired(c)
		return
	}
	c.Next()
}

func loginRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required", "redirect": "/login"})
}

// requireEmployer aborts with 403 unless the session user may post jobs. It
// must run after requireUser.
func requireEmployer(c *gin.Context) {
	if !auth.CanPostJobs(currentUser(c)) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": string(model.RoleEmployer) + " account required"})
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) model.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(model.User); ok {
			return u
		}
	}
	return model.User{}
}

func currentToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

// guardKey identifies the caller for PendingGuard: the session token, or the
// client IP for anonymous visitors.
func guardKey(c *gin.Context) string {
	if token := currentToken(c); token != "" {
		return token
	}
	return "ip:" + c.ClientIP()
}
