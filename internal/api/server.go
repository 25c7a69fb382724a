// Package api exposes the planner over HTTP with gin. Every response uses
// the {status, data, message} envelope.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server is the planner HTTP server.
type Server struct {
	planner service.PlannerService
	logger  *log.Logger
	router  *gin.Engine
}

// NewServer builds the router. A nil logger disables request logging.
func NewServer(planner service.PlannerService, logger *log.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(requestLogger(logger.WithPrefix("http")))
	}

	s := &Server{
		planner: planner,
		logger:  logger,
		router:  router,
	}

	router.GET("/api/health", s.handleHealth)

	routes := router.Group("/api/planner")
	{
		routes.GET("/projects", s.handleListProjects)
		routes.GET("/summaries", s.handleSummaries)
		routes.POST("/create_project", s.handleCreateProject)
		routes.POST("/toggle_training", s.handleToggleTraining)
		routes.GET("/project/:name", s.handleListTasks)
		routes.GET("/roadmap/:name", s.handleRoadmap)
		routes.GET("/due", s.handleDue)
		routes.POST("/task", s.handleCreateTask)
		routes.PUT("/task", s.handleUpdateTask)
		routes.DELETE("/task", s.handleDeleteTask)
		routes.POST("/complete", s.handleComplete)
	}

	return s
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	if s.logger != nil {
		s.logger.Info("listening", "addr", addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
