package query

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	httperr "github.com/statflow-lab/project-statflow/internal/core/errors"
)

// RegisterRoutes registers the query API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/stats", s.HandleRangeQuery)
}

// HandleRangeQuery handles GET /v1/stats?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (s *Service) HandleRangeQuery(c *gin.Context) {
	var params struct {
		From string `form:"from" binding:"required"`
		To   string `form:"to" binding:"required"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidDateError,
			Message:   "Query parameters 'from' and 'to' are required",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.Totals(c.Request.Context(), params.From, params.To)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidDateError,
				Message:   "Invalid date range",
				Details:   err.Error(),
			})
			return
		}

		// Store failures stay opaque to the caller.
		slog.Error("[Query] Range query failed", "from", params.From, "to", params.To, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to resolve range query",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
