package stats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/statsbot-lab/guild-stats/internal/core/errors"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// RegisterRoutes registers the stats routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/bot/channels/:channel_id/user-stats", s.HandleChannelStats)
}

// HandleChannelStats handles GET /v1/bot/channels/:channel_id/user-stats
func (s *Service) HandleChannelStats(c *gin.Context) {
	var uri struct {
		ChannelID string `uri:"channel_id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequest,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return
	}

	result, err := s.ChannelStats(c.Request.Context(), uri.ChannelID)
	if err != nil {
		var apiErr *platform.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, httperr.ErrorResponse{
				ErrorType: httperr.HttpPlatformError,
				Message:   "Failed to resolve names for channel stats",
				Details:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to compute channel stats",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
