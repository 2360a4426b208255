// Package api exposes the condition registry, the scoring engine and the
// plan builders over HTTP. Handlers translate transport concerns only; all
// clinical semantics live in the conditions and scoring packages.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/middleware"
	"github.com/clinical-pathways-server/internal/scoring"
)

// Server is the HTTP server wiring the registry, the scoring engine and the
// audit trail behind a gin router.
type Server struct {
	cfg      *domain.Config
	logger   *logrus.Logger
	registry *conditions.Registry
	engine   *scoring.Engine
	audits   audit.Store

	// Condition metadata is static per process, so responses are cached.
	metaCache *lru.Cache[string, conditions.Metadata]

	upgrader websocket.Upgrader
	router   *gin.Engine
	server   *http.Server
}

// NewServer creates an HTTP server instance.
func NewServer(cfg *domain.Config, logger *logrus.Logger, registry *conditions.Registry, engine *scoring.Engine, audits audit.Store) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	metaCache, err := lru.New[string, conditions.Metadata](cfg.Cache.MaxEntries)
	if err != nil {
		// Only reachable with a non-positive size, which Validate rejects.
		panic(err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(logger))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(limiter.Middleware())
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		engine:    engine,
		audits:    audits,
		metaCache: metaCache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		router: router,
	}

	s.setupRoutes()
	return s
}

// Router returns the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/conditions", s.handleListConditions)
		v1.GET("/conditions/:slug", s.handleGetCondition)

		scores := v1.Group("/scores")
		{
			scores.POST("/wells-pe", s.handleWellsPE)
			scores.POST("/killip", s.handleKillip)
			scores.POST("/dka-severity", s.handleDKASeverity)
			scores.POST("/uc-severity", s.handleUCSeverity)
			scores.POST("/das28", s.handleDAS28)
			scores.POST("/das28/interpret", s.handleInterpretDAS28)
			scores.POST("/grace", s.handleGrace)
		}

		v1.POST("/diagnose/acs", s.handleDiagnoseACS)

		plans := v1.Group("/plans")
		{
			plans.POST("/acs/stemi", s.handleSTEMIPlan)
			plans.POST("/acs/nstemi", s.handleNSTEMIPlan)
			plans.POST("/pe", s.handlePEPlan)
			plans.POST("/copd-exacerbation", s.handleCOPDPlan)
			plans.POST("/dka", s.handleDKAPlan)
			plans.POST("/ra", s.handleRAPlan)
			plans.POST("/uc", s.handleUCPlan)
			plans.POST("/stroke", s.handleStrokePlan)
		}

		v1.GET("/audit", s.handleListAudit)
		v1.GET("/audit/export", s.handleExportAudit)

		v1.GET("/walk", s.handleWalk)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}
