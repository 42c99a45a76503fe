package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

const (
	defaultWorkerCount   = 4
	defaultPageSize      = 100
	defaultProgressEvery = 1000
)

// ChannelState is the lifecycle of one channel within a backfill.
type ChannelState string

const (
	StatePending   ChannelState = "pending"
	StateFetching  ChannelState = "fetching"
	StateCompleted ChannelState = "completed"
	StateFailed    ChannelState = "failed"
)

// BackfillOptions controls concurrency and paging of a backfill.
type BackfillOptions struct {
	WorkerCount   int
	PageSize      int
	ProgressEvery int
}

func (o BackfillOptions) normalized() BackfillOptions {
	n := o
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	if n.PageSize <= 0 || n.PageSize > defaultPageSize {
		n.PageSize = defaultPageSize
	}
	if n.ProgressEvery <= 0 {
		n.ProgressEvery = defaultProgressEvery
	}
	return n
}

// ChannelReport is the outcome of one channel.
type ChannelReport struct {
	ChannelID   string
	ChannelName string
	State       ChannelState
	Messages    int
	Err         error
}

// Report is the outcome of one guild backfill.
type Report struct {
	GuildID    string
	StartedAt  time.Time
	FinishedAt time.Time
	Channels   []ChannelReport
}

// Messages is the number of messages stored across all channels.
func (r *Report) Messages() int {
	total := 0
	for _, c := range r.Channels {
		total += c.Messages
	}
	return total
}

// Failed is the number of channels that ended in StateFailed.
func (r *Report) Failed() int {
	n := 0
	for _, c := range r.Channels {
		if c.State == StateFailed {
			n++
		}
	}
	return n
}

// Backfiller loads the full history of every text channel of a guild.
type Backfiller struct {
	client  platform.Client
	store   storage.RecordStore
	opts    BackfillOptions
	metrics *metrics.Metrics
}

func NewBackfiller(client platform.Client, store storage.RecordStore, opts BackfillOptions, m *metrics.Metrics) *Backfiller {
	if client == nil {
		panic("ingestion: platform client must not be nil")
	}
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	return &Backfiller{
		client:  client,
		store:   store,
		opts:    opts.normalized(),
		metrics: m,
	}
}

// Backfill walks every text channel of guildID concurrently. A failing channel
// is reported as StateFailed and never affects its siblings; the returned error
// is non-nil only when the channel list itself cannot be fetched.
func (b *Backfiller) Backfill(ctx context.Context, guildID string) (*Report, error) {
	report := &Report{GuildID: guildID, StartedAt: time.Now().UTC()}

	channels, err := b.client.ListGuildChannels(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list channels of guild %s: %w", guildID, err)
	}

	var text []platform.Channel
	for _, ch := range channels {
		if ch.IsText() {
			text = append(text, ch)
		}
	}

	report.Channels = make([]ChannelReport, len(text))
	for i, ch := range text {
		report.Channels[i] = ChannelReport{ChannelID: ch.ID, ChannelName: ch.Name, State: StatePending}
	}

	slog.Info("[Backfill] Starting guild backfill",
		"guild_id", guildID,
		"text_channels", len(text),
		"skipped_channels", len(channels)-len(text),
		"workers", b.opts.WorkerCount)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(b.opts.WorkerCount)
	for i, ch := range text {
		i, ch := i, ch
		g.Go(func() error {
			mu.Lock()
			report.Channels[i].State = StateFetching
			mu.Unlock()

			result := b.backfillChannel(ctx, guildID, ch)

			mu.Lock()
			report.Channels[i] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	report.FinishedAt = time.Now().UTC()
	slog.Info("[Backfill] Guild backfill finished",
		"guild_id", guildID,
		"channels", len(report.Channels),
		"failed_channels", report.Failed(),
		"messages", report.Messages(),
		"duration", report.FinishedAt.Sub(report.StartedAt))

	return report, nil
}

func (b *Backfiller) backfillChannel(ctx context.Context, guildID string, ch platform.Channel) ChannelReport {
	result := ChannelReport{ChannelID: ch.ID, ChannelName: ch.Name, State: StateFetching}

	slog.Info("[Backfill] Fetching channel", "guild_id", guildID, "channel_id", ch.ID, "channel_name", ch.Name)

	n, err := b.fetchChannel(ctx, guildID, ch)
	result.Messages = n
	if err != nil {
		result.State = StateFailed
		result.Err = err
		logChannelError(guildID, ch, n, err)
	} else {
		result.State = StateCompleted
		slog.Info("[Backfill] Channel completed",
			"guild_id", guildID,
			"channel_id", ch.ID,
			"channel_name", ch.Name,
			"messages", n)
	}

	b.metrics.ChannelBackfill(string(result.State))
	return result
}

// fetchChannel pages newest-first from the latest message, using the oldest
// ID of each page as the cursor for the next, until an empty page.
func (b *Backfiller) fetchChannel(ctx context.Context, guildID string, ch platform.Channel) (int, error) {
	c := record.Context{GuildID: guildID, ChannelID: ch.ID}
	before := ""
	count := 0

	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		page, err := b.client.FetchMessagePage(ctx, ch.ID, before, b.opts.PageSize)
		if err != nil {
			return count, fmt.Errorf("fetch page before %q: %w", before, err)
		}
		if len(page) == 0 {
			return count, nil
		}

		for _, msg := range page {
			if err := putAll(ctx, b.store, historyRecords(msg, c)...); err != nil {
				return count, err
			}
			count++
			if count%b.opts.ProgressEvery == 0 {
				slog.Info("[Backfill] Progress",
					"guild_id", guildID,
					"channel_id", ch.ID,
					"channel_name", ch.Name,
					"messages", count)
			}
		}
		b.metrics.BackfillMessages(len(page))

		next := page[len(page)-1].ID
		if next == before {
			slog.Warn("[Backfill] Cursor did not advance, stopping channel",
				"channel_id", ch.ID,
				"cursor", before)
			return count, nil
		}
		before = next
	}
}

func logChannelError(guildID string, ch platform.Channel, stored int, err error) {
	attrs := []any{
		"guild_id", guildID,
		"channel_id", ch.ID,
		"channel_name", ch.Name,
		"messages_stored", stored,
		"error", err,
	}

	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs,
			"status", apiErr.StatusCode,
			"platform_code", apiErr.Code,
			"platform_message", apiErr.Message)
	}

	slog.Error("[Backfill] Channel failed", attrs...)
}
