// Package datastore exposes direct record operations over HTTP: lookup by
// key, filtered deletion and the oldest-timestamp query.
package datastore

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/statsbot-lab/guild-stats/internal/api/v1"
	httperr "github.com/statsbot-lab/guild-stats/internal/core/errors"
	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
)

type Service struct {
	store storage.RecordStore
}

func NewService(store storage.RecordStore) *Service {
	if store == nil {
		panic("datastore: store must not be nil")
	}
	return &Service{store: store}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/datastore", s.GetRecordHandler)
	r.DELETE("/v1/datastore", s.DeleteRecordsHandler)
	r.GET("/v1/datastore/oldest-timestamp", s.OldestTimestampHandler)
}

// GetRecordHandler handles GET /v1/datastore?kind=&key=
func (s *Service) GetRecordHandler(c *gin.Context) {
	kind, ok := bindKind(c)
	if !ok {
		return
	}
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, httperr.New(httperr.HttpInvalidRequest, "key query parameter is required"))
		return
	}

	found, err := s.store.Get(c.Request.Context(), kind, key)
	if err != nil {
		internalError(c, "Failed to read record", err)
		return
	}

	rec, ok := found.Get()
	if !ok {
		c.JSON(http.StatusNotFound, httperr.New(httperr.HttpNotFound, "Record not found"))
		return
	}
	c.JSON(http.StatusOK, v1.FromRecord(rec))
}

// DeleteRecordsHandler handles DELETE /v1/datastore?kind=&guild=&channel=
// Omitted guild and channel match every record of the kind.
func (s *Service) DeleteRecordsHandler(c *gin.Context) {
	kind, ok := bindKind(c)
	if !ok {
		return
	}
	guild, channel := c.Query("guild"), c.Query("channel")

	deleted, err := s.store.DeleteWhere(c.Request.Context(), kind, storage.FilterFrom(guild, channel))
	if err != nil {
		internalError(c, "Failed to delete records", err)
		return
	}

	slog.Info("[Datastore] Records deleted",
		"kind", kind,
		"guild", guild,
		"channel", channel,
		"deleted", deleted)

	c.JSON(http.StatusOK, v1.DeleteResult{
		Kind:    string(kind),
		Guild:   guild,
		Channel: channel,
		Deleted: deleted,
	})
}

// OldestTimestampHandler handles GET /v1/datastore/oldest-timestamp?kind=
func (s *Service) OldestTimestampHandler(c *gin.Context) {
	kind, ok := bindKind(c)
	if !ok {
		return
	}

	ts, err := s.store.OldestTimestamp(c.Request.Context(), kind)
	if err != nil {
		internalError(c, "Failed to read oldest timestamp", err)
		return
	}
	c.JSON(http.StatusOK, v1.OldestTimestamp{Kind: string(kind), Timestamp: ts.UTC()})
}

// bindKind writes a 400 response and reports false when kind is missing or unknown.
func bindKind(c *gin.Context) (record.Kind, bool) {
	kind := record.Kind(c.Query("kind"))
	if err := storage.ValidateKind(kind); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnknownKind,
			Message:   err.Error(),
			Details:   map[string]interface{}{"supported": record.Kinds},
		})
		return "", false
	}
	return kind, true
}

func internalError(c *gin.Context, message string, err error) {
	if errors.Is(err, storage.ErrUnknownKind) {
		c.JSON(http.StatusBadRequest, httperr.New(httperr.HttpUnknownKind, err.Error()))
		return
	}
	slog.Error("[Datastore] "+message, "error", err)
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   message,
		Details:   err.Error(),
	})
}
