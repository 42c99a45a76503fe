// Package stats computes per-channel usage statistics from stored message records.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
	"github.com/statsbot-lab/guild-stats/internal/identity"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
)

// Service computes channel statistics. It fails closed: any store or
// name lookup error fails the whole computation.
type Service struct {
	store    storage.RecordStore
	resolver identity.Resolver
	opts     Options
	metrics  *metrics.Metrics
}

func NewService(store storage.RecordStore, resolver identity.Resolver, opts Options, m *metrics.Metrics) *Service {
	if store == nil {
		panic("stats: store must not be nil")
	}
	if resolver == nil {
		panic("stats: resolver must not be nil")
	}
	return &Service{
		store:    store,
		resolver: resolver,
		opts:     opts.normalized(),
		metrics:  m,
	}
}

// ChannelStats computes the message count, the mean messages per active day
// and the top authors of a channel.
func (s *Service) ChannelStats(ctx context.Context, channelID string) (*ChannelStats, error) {
	result, err := s.channelStats(ctx, channelID)
	if err != nil {
		s.metrics.StatsRequest("error")
		slog.Error("[Stats] Channel stats failed", "channel_id", channelID, "error", err)
		return nil, err
	}
	s.metrics.StatsRequest("ok")
	return result, nil
}

func (s *Service) channelStats(ctx context.Context, channelID string) (*ChannelStats, error) {
	messages, err := s.store.ChannelMessages(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("load messages of channel %s: %w", channelID, err)
	}

	top, err := s.topUsers(ctx, messages)
	if err != nil {
		return nil, err
	}

	channelName, err := s.resolver.ChannelName(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("channel name: %w", err)
	}

	perDay := messagesPerDay(messages)

	slog.Info("[Stats] Channel stats computed",
		"channel_id", channelID,
		"messages", len(messages),
		"authors", len(top))

	return &ChannelStats{
		ChannelName:    channelName,
		MessagesCount:  len(messages),
		MessagesPerDay: perDay.InexactFloat64(),
		TopUsers:       top,
	}, nil
}

type authorCount struct {
	authorID string
	count    int
}

// topUsers counts messages per author, resolves every distinct author's name
// and returns the busiest authors. Ties keep first-appearance order of the
// timestamp-ordered messages.
func (s *Service) topUsers(ctx context.Context, messages []*record.Record) ([]UserStats, error) {
	index := make(map[string]int)
	var authors []authorCount
	for _, msg := range messages {
		author := msg.String(record.FieldAuthor)
		if author == "" {
			continue
		}
		i, seen := index[author]
		if !seen {
			i = len(authors)
			index[author] = i
			authors = append(authors, authorCount{authorID: author})
		}
		authors[i].count++
	}

	names := make([]string, len(authors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.LookupConcurrency)
	for i, a := range authors {
		i, a := i, a
		g.Go(func() error {
			name, err := s.resolver.UserName(gctx, a.authorID)
			if err != nil {
				return fmt.Errorf("author name: %w", err)
			}
			names[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]UserStats, len(authors))
	for i, a := range authors {
		out[i] = UserStats{UserName: names[i], MessagesCount: a.count}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MessagesCount > out[j].MessagesCount
	})

	if len(out) > s.opts.TopUsers {
		out = out[:s.opts.TopUsers]
	}
	return out, nil
}
