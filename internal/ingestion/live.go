package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/statsbot-lab/guild-stats/internal/core/events"
	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

const (
	SubscriberMessageCreate = "message-create"
	SubscriberReactionAdd   = "reaction-add"
)

// LiveOptions controls the live loader.
type LiveOptions struct {
	BufferSize int
	// ResolveReactionCounts fetches the message on every reaction event and
	// stores the platform aggregate instead of 1.
	ResolveReactionCounts bool
}

// LiveLoader keeps the store current from gateway events. Message and
// reaction events are handled by independent subscribers.
type LiveLoader struct {
	client platform.Client
	store  storage.RecordStore
	opts   LiveOptions

	messages  *events.Subscriber[platform.Message]
	reactions *events.Subscriber[platform.ReactionAdd]
}

func NewLiveLoader(client platform.Client, store storage.RecordStore, opts LiveOptions, m *metrics.Metrics) *LiveLoader {
	if client == nil {
		panic("ingestion: platform client must not be nil")
	}
	if store == nil {
		panic("ingestion: store must not be nil")
	}

	l := &LiveLoader{client: client, store: store, opts: opts}
	l.messages = events.NewSubscriber(SubscriberMessageCreate, opts.BufferSize, l.HandleMessage).
		WithObserver(m.LiveEvent)
	l.reactions = events.NewSubscriber(SubscriberReactionAdd, opts.BufferSize, l.HandleReaction).
		WithObserver(m.LiveEvent)
	return l
}

// Subscribe registers the loader's subscribers with source. The returned
// func detaches both.
func (l *LiveLoader) Subscribe(source platform.EventSource) (remove func()) {
	removeMessages := source.OnMessageCreate(func(msg platform.Message) {
		l.messages.Publish(msg)
	})
	removeReactions := source.OnReactionAdd(func(r platform.ReactionAdd) {
		l.reactions.Publish(r)
	})
	return func() {
		removeMessages()
		removeReactions()
	}
}

// Run drives both subscribers until ctx is cancelled.
func (l *LiveLoader) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		l.messages.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		l.reactions.Run(ctx)
	}()
	wg.Wait()
}

// HandleMessage persists a newly created message and one mention record per
// mentioned user.
func (l *LiveLoader) HandleMessage(ctx context.Context, msg platform.Message) error {
	c := record.Context{GuildID: msg.GuildID, ChannelID: msg.ChannelID}
	if err := putAll(ctx, l.store, liveMessageRecords(msg, c)...); err != nil {
		return fmt.Errorf("message %s: %w", msg.ID, err)
	}
	slog.Debug("[LiveLoader] Message stored",
		"message_id", msg.ID,
		"channel_id", msg.ChannelID,
		"mentions", len(msg.Mentions))
	return nil
}

// HandleReaction persists the reaction state of one emoji on a message.
func (l *LiveLoader) HandleReaction(ctx context.Context, r platform.ReactionAdd) error {
	count := l.reactionCount(ctx, r)
	c := record.Context{GuildID: r.GuildID, ChannelID: r.ChannelID}
	if err := putAll(ctx, l.store, record.FromReaction(r.Emoji, count, r.MessageID, c)); err != nil {
		return fmt.Errorf("reaction on message %s: %w", r.MessageID, err)
	}
	return nil
}

func (l *LiveLoader) reactionCount(ctx context.Context, r platform.ReactionAdd) int {
	if !l.opts.ResolveReactionCounts {
		return 1
	}

	msg, err := l.client.FetchMessage(ctx, r.ChannelID, r.MessageID)
	if err != nil {
		slog.Warn("[LiveLoader] Reaction count lookup failed, storing 1",
			"message_id", r.MessageID,
			"channel_id", r.ChannelID,
			"emoji", r.Emoji,
			"error", err)
		return 1
	}
	for _, reaction := range msg.Reactions {
		if reaction.Emoji == r.Emoji && reaction.Count > 0 {
			return reaction.Count
		}
	}

	slog.Warn("[LiveLoader] Emoji missing from fetched message, storing 1",
		"message_id", r.MessageID,
		"emoji", r.Emoji)
	return 1
}
