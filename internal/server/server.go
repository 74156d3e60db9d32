// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the decision pipeline over HTTP. It owns all
// request decoding and response shaping; the decision core stays free of
// any network surface.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pdiddy/recyclo/internal/charity"
	"github.com/pdiddy/recyclo/internal/classifier"
	"github.com/pdiddy/recyclo/internal/policy"
	"github.com/pdiddy/recyclo/internal/progress"
	"github.com/pdiddy/recyclo/pkg/types"
)

// Server wires the classifier, resolver, and collaborator stores behind
// the HTTP API.
type Server struct {
	classifier classifier.Classifier
	resolver   *policy.Resolver
	progress   *progress.Store
	charities  *charity.Directory
	cfg        types.ServerConfig
	engine     *gin.Engine
}

// New assembles the API server. The progress store and charity directory
// may be nil; their routes then answer 503.
func New(cls classifier.Classifier, resolver *policy.Resolver, logs *progress.Store, charities *charity.Directory, cfg types.ServerConfig) *Server {
	s := &Server{
		classifier: cls,
		resolver:   resolver,
		progress:   logs,
		charities:  charities,
		cfg:        cfg,
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID())

	engine.GET("/health", s.health)

	api := engine.Group("/", s.requireAPIKey())
	api.POST("/process_image", s.processImage)
	api.GET("/api/charities", s.listCharities)
	api.GET("/api/progress/summary", s.progressSummary)
	api.GET("/api/progress/logs", s.progressLogs)
	api.DELETE("/api/logs", s.clearLogs)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	return s.engine.Run(addr)
}

// requestID tags each request with a UUID, echoed in the X-Request-ID
// response header and attached to verdict responses.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requireAPIKey rejects requests without the configured X-API-Key header.
// A blank configured key disables the check.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.APIKey != "" && c.GetHeader("X-API-Key") != s.cfg.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid API key"})
			return
		}
		c.Next()
	}
}

// currentUser reads the caller identity set by the fronting auth layer.
// Account management is not this service's concern.
func currentUser(c *gin.Context) string {
	return c.GetHeader("X-User")
}
