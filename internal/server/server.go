package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/statflow-lab/project-statflow/internal/core/errors"
)

type Server struct {
	Engine *gin.Engine
	Addr   string
	hot    HealthChecker
	cold   HealthChecker
}

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

func New(addr string, hot, cold HealthChecker, mode string) *Server {
	// Set Gin mode based on configuration
	if mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	s := &Server{
		Engine: r,
		Addr:   addr,
		hot:    hot,
		cold:   cold,
	}

	// Health check endpoint with store connectivity verification
	r.GET("/health", s.healthHandler)

	return s
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.hot != nil {
		if err := s.hot.Ping(ctx); err != nil {
			slog.Error("Health check failed: hot store unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, errors.ErrorResponse{
				ErrorType: errors.HttpUnavailableError,
				Message:   "hot store unreachable",
			})
			return
		}
	}

	if s.cold != nil {
		if err := s.cold.Ping(ctx); err != nil {
			slog.Error("Health check failed: cold store unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, errors.ErrorResponse{
				ErrorType: errors.HttpUnavailableError,
				Message:   "cold store unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"stores": "connected",
	})
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: s.Engine,
	}

	slog.Info("Starting HTTP Server...", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("Stopping HTTP Server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP Server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
