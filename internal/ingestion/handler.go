package ingestion

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/statsbot-lab/guild-stats/internal/api/v1"
	httperr "github.com/statsbot-lab/guild-stats/internal/core/errors"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

const (
	msgGuildRequired    = "guild query parameter is required"
	msgBackfillRunning  = "Backfill already queued or running for guild"
	msgBackfillQueue    = "Backfill queue is full, retry later"
	msgBackfillNotFound = "No backfill in flight for guild"
	msgNoBackfill       = "No backfill has run for guild"
	msgPlatformFailed   = "Chat platform request failed"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// TriggerBackfillHandler enqueues a full backfill of the guild and returns immediately.
func (s *Service) TriggerBackfillHandler(c *gin.Context) {
	guildID, ierr := requireGuild(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	if err := s.queue.TriggerBackfill(guildID); err != nil {
		writeError(c, backfillError(guildID, err))
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "guild_id": guildID})
}

// CancelBackfillHandler cancels a queued or running backfill.
func (s *Service) CancelBackfillHandler(c *gin.Context) {
	guildID, ierr := requireGuild(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	if !s.queue.Cancel(guildID) {
		writeError(c, &ingestionError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpBackfillNotRunning,
			message:    msgBackfillNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "guild_id": guildID})
}

// BackfillStatusHandler reports whether a backfill is in flight and the last finished report.
func (s *Service) BackfillStatusHandler(c *gin.Context) {
	guildID, ierr := requireGuild(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	running, last := s.queue.Status(guildID)
	if !running && last == nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpNotFound,
			message:    msgNoBackfill,
		})
		return
	}

	c.JSON(http.StatusOK, toBackfillStatus(guildID, running, last))
}

// ListGuildsHandler lists the guilds visible to the bot.
func (s *Service) ListGuildsHandler(c *gin.Context) {
	guilds, err := s.client.ListGuilds(c.Request.Context())
	if err != nil {
		writeError(c, platformError("list guilds", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"guilds": v1.FromGuilds(guilds)})
}

// ListChannelsHandler lists every channel of a guild, text-capable or not.
func (s *Service) ListChannelsHandler(c *gin.Context) {
	guildID, ierr := requireGuild(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	channels, err := s.client.ListGuildChannels(c.Request.Context(), guildID)
	if err != nil {
		writeError(c, platformError("list channels", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"guild_id": guildID, "channels": v1.FromChannels(channels)})
}

func requireGuild(c *gin.Context) (string, *ingestionError) {
	guildID := c.Query("guild")
	if guildID == "" {
		return "", &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequest,
			message:    msgGuildRequired,
		}
	}
	return guildID, nil
}

func backfillError(guildID string, err error) *ingestionError {
	switch {
	case errors.Is(err, ErrAlreadyRunning):
		slog.Info("[Ingestion] Backfill rejected, already in flight", "guild_id", guildID)
		return &ingestionError{
			statusCode: http.StatusConflict,
			errorType:  httperr.HttpBackfillRunning,
			message:    msgBackfillRunning,
		}
	case errors.Is(err, ErrQueueFull):
		slog.Warn("[Ingestion] Backfill rejected, queue full", "guild_id", guildID)
		return &ingestionError{
			statusCode: http.StatusServiceUnavailable,
			errorType:  httperr.HttpBackfillQueueFull,
			message:    msgBackfillQueue,
		}
	default:
		slog.Error("[Ingestion] Failed to enqueue backfill", "guild_id", guildID, "error", err)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    err.Error(),
		}
	}
}

func platformError(op string, err error) *ingestionError {
	slog.Error("[Ingestion] Platform request failed", "operation", op, "error", err)

	ierr := &ingestionError{
		statusCode: http.StatusBadGateway,
		errorType:  httperr.HttpPlatformError,
		message:    msgPlatformFailed,
	}
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		ierr.details = map[string]interface{}{
			"status":  apiErr.StatusCode,
			"code":    apiErr.Code,
			"message": apiErr.Message,
		}
	}
	return ierr
}

func toBackfillStatus(guildID string, running bool, last *Report) v1.BackfillStatus {
	out := v1.BackfillStatus{GuildID: guildID, Running: running}
	if last == nil {
		return out
	}

	started, finished := last.StartedAt, last.FinishedAt
	out.StartedAt = &started
	out.FinishedAt = &finished
	out.Channels = make([]v1.ChannelBackfill, 0, len(last.Channels))
	for _, ch := range last.Channels {
		entry := v1.ChannelBackfill{
			ChannelID:   ch.ChannelID,
			ChannelName: ch.ChannelName,
			State:       string(ch.State),
			Messages:    ch.Messages,
		}
		if ch.Err != nil {
			entry.Error = ch.Err.Error()
		}
		out.Channels = append(out.Channels, entry)
	}
	return out
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
