package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Trigger enqueues a guild backfill.
type Trigger interface {
	TriggerBackfill(guildID string) error
}

// Scheduler re-backfills a fixed set of guilds on a periodic interval.
// Every listed guild is also enqueued once at start.
type Scheduler struct {
	interval time.Duration
	trigger  Trigger
	guilds   []string
}

// NewScheduler creates a scheduler; interval 0 enqueues once and never repeats.
func NewScheduler(interval time.Duration, trigger Trigger, guilds []string) *Scheduler {
	if trigger == nil {
		panic("ingestion: trigger must not be nil")
	}
	return &Scheduler{
		interval: interval,
		trigger:  trigger,
		guilds:   guilds,
	}
}

// Start runs until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.guilds) == 0 {
		slog.Info("[Scheduler] No guilds configured, scheduler idle")
		return nil
	}

	slog.Info("[Scheduler] Starting backfill scheduler",
		"interval", s.interval,
		"guilds", len(s.guilds))

	s.enqueueAll()

	if s.interval <= 0 {
		slog.Info("[Scheduler] Periodic backfill disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.enqueueAll()
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) enqueueAll() {
	queued := 0
	for _, guildID := range s.guilds {
		err := s.trigger.TriggerBackfill(guildID)
		switch {
		case err == nil:
			queued++
		case errors.Is(err, ErrAlreadyRunning):
			slog.Info("[Scheduler] Backfill still running, skipping", "guild_id", guildID)
		default:
			slog.Warn("[Scheduler] Failed to enqueue backfill", "guild_id", guildID, "error", err)
		}
	}
	slog.Info("[Scheduler] Tick complete", "queued", queued, "guilds", len(s.guilds))
}
