package ingestion

import (
	"github.com/gin-gonic/gin"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// BackfillQueue is the control side of the backfill queue used by the HTTP routes.
type BackfillQueue interface {
	Trigger
	Cancel(guildID string) bool
	Status(guildID string) (running bool, last *Report)
}

type Service struct {
	queue  BackfillQueue
	client platform.Client
}

func NewService(queue BackfillQueue, client platform.Client) *Service {
	if queue == nil {
		panic("ingestion: backfill queue must not be nil")
	}
	if client == nil {
		panic("ingestion: platform client must not be nil")
	}
	return &Service{
		queue:  queue,
		client: client,
	}
}

// RegisterRoutes registers the bot control routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/bot/initial-load", s.TriggerBackfillHandler)
	r.DELETE("/v1/bot/initial-load", s.CancelBackfillHandler)
	r.GET("/v1/bot/initial-load", s.BackfillStatusHandler)

	r.GET("/v1/bot/guilds", s.ListGuildsHandler)
	r.GET("/v1/bot/channels", s.ListChannelsHandler)
}
