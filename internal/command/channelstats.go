// Package command answers the `!channelstats` chat command.
package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/statsbot-lab/guild-stats/internal/core/events"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
	"github.com/statsbot-lab/guild-stats/internal/platform"
	"github.com/statsbot-lab/guild-stats/internal/stats"
)

const (
	Prefix         = "!channelstats"
	SubscriberName = "channelstats-command"

	titleInvalid = "Invalid request"
	titleStats   = "Channel stats"
	titleFailed  = "Request failed"

	descSingleChannel = "Please mention a single channel after command. Example: `!channelstats #general`"
	descTextChannel   = "Please specify text channel. Other types of channels are not supported."
	descFailed        = "Channel stats are unavailable right now, please try again later."
)

var channelMention = regexp.MustCompile(`<#!?(\d+)>`)

// StatsSource computes channel statistics.
type StatsSource interface {
	ChannelStats(ctx context.Context, channelID string) (*stats.ChannelStats, error)
}

// ChannelStatsCommand replies to `!channelstats #channel` with the channel's stats.
type ChannelStatsCommand struct {
	client     platform.Client
	stats      StatsSource
	subscriber *events.Subscriber[platform.Message]
}

func NewChannelStatsCommand(client platform.Client, source StatsSource, bufferSize int, m *metrics.Metrics) *ChannelStatsCommand {
	if client == nil {
		panic("command: platform client must not be nil")
	}
	if source == nil {
		panic("command: stats source must not be nil")
	}
	c := &ChannelStatsCommand{client: client, stats: source}
	c.subscriber = events.NewSubscriber(SubscriberName, bufferSize, c.Handle).WithObserver(m.LiveEvent)
	return c
}

// Subscribe forwards command messages from source to the command's subscriber.
func (c *ChannelStatsCommand) Subscribe(source platform.EventSource) (remove func()) {
	return source.OnMessageCreate(func(msg platform.Message) {
		if IsCommand(msg.Content) {
			c.subscriber.Publish(msg)
		}
	})
}

func (c *ChannelStatsCommand) Run(ctx context.Context) {
	c.subscriber.Run(ctx)
}

// IsCommand reports whether content invokes the command.
func IsCommand(content string) bool {
	return strings.HasPrefix(content, Prefix)
}

// ChannelMentions returns the IDs of every channel mentioned in content, in order.
func ChannelMentions(content string) []string {
	matches := channelMention.FindAllStringSubmatch(content, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// Handle answers one command message. Messages that are not commands are ignored.
func (c *ChannelStatsCommand) Handle(ctx context.Context, msg platform.Message) error {
	if !IsCommand(msg.Content) {
		return nil
	}

	mentions := ChannelMentions(msg.Content)
	if len(mentions) != 1 {
		return c.reply(ctx, msg.ChannelID, titleInvalid, descSingleChannel)
	}

	target, err := c.client.GetChannel(ctx, mentions[0])
	if err != nil {
		return fmt.Errorf("look up channel %s: %w", mentions[0], err)
	}
	if !target.IsText() {
		return c.reply(ctx, msg.ChannelID, titleInvalid, descTextChannel)
	}

	result, err := c.stats.ChannelStats(ctx, target.ID)
	if err != nil {
		if replyErr := c.reply(ctx, msg.ChannelID, titleFailed, descFailed); replyErr != nil {
			slog.Warn("[Command] Failed to send failure reply", "channel_id", msg.ChannelID, "error", replyErr)
		}
		return fmt.Errorf("channel stats for %s: %w", target.ID, err)
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode channel stats: %w", err)
	}

	slog.Info("[Command] Channel stats requested",
		"requested_by", msg.AuthorID,
		"channel_id", target.ID,
		"reply_channel_id", msg.ChannelID)

	return c.reply(ctx, msg.ChannelID, titleStats, fmt.Sprintf("```json\n%s\n```", body))
}

func (c *ChannelStatsCommand) reply(ctx context.Context, channelID, title, description string) error {
	if err := c.client.SendEmbed(ctx, channelID, title, description); err != nil {
		return fmt.Errorf("send %q reply: %w", title, err)
	}
	return nil
}
