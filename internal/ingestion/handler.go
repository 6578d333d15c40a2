package ingestion

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/statflow-lab/project-statflow/internal/core/errors"
)

// baseContext detaches the run from the request lifecycle; the run is ended
// by StopImport or end of file, not by the client disconnecting.
func baseContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// RegisterRoutes attaches the import control endpoints to the router.
func (s *Service) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/import/start", s.HandleStartImport)
	router.POST("/v1/import/stop", s.HandleStopImport)
}

// HandleStartImport launches a background import run. The run outlives the
// request, so it is anchored to the server's base context rather than the
// request context.
func (s *Service) HandleStartImport(c *gin.Context) {
	runID, err := s.StartImport(baseContext(c))
	if err != nil {
		if stderrors.Is(err, ErrImportRunning) {
			c.JSON(http.StatusConflict, errors.ErrorResponse{
				ErrorType: errors.HttpImportActiveError,
				Message:   "an import run is already in progress",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			ErrorType: errors.HttpInternalError,
			Message:   "failed to start import",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "started",
		"run_id": runID,
	})
}

// HandleStopImport signals the active run to stop. Stopping with no run in
// flight is a no-op rather than an error.
func (s *Service) HandleStopImport(c *gin.Context) {
	s.StopImport()
	c.JSON(http.StatusAccepted, gin.H{"status": "stopping"})
}
