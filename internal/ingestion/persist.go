package ingestion

import (
	"context"
	"fmt"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// putAll writes records in order and stops at the first failure.
func putAll(ctx context.Context, store storage.RecordStore, records ...*record.Record) error {
	for _, rec := range records {
		if err := store.Put(ctx, rec); err != nil {
			return fmt.Errorf("store %s %s: %w", rec.Kind, rec.Key, err)
		}
	}
	return nil
}

// historyRecords maps a history message to its reactions, mentions and
// attachments followed by the message itself.
func historyRecords(msg platform.Message, c record.Context) []*record.Record {
	reactionCtx := reactionContext(msg, c)

	records := make([]*record.Record, 0, len(msg.Reactions)+len(msg.Mentions)+len(msg.Attachments)+1)
	for _, r := range msg.Reactions {
		records = append(records, record.FromReaction(r.Emoji, r.Count, msg.ID, reactionCtx))
	}
	for _, u := range msg.Mentions {
		records = append(records, record.FromMention(u.ID, msg, c))
	}
	for _, a := range msg.Attachments {
		records = append(records, record.FromAttachment(a, msg, c))
	}
	return append(records, record.FromMessage(msg, c))
}

// liveMessageRecords maps a live message to the message followed by its mentions.
func liveMessageRecords(msg platform.Message, c record.Context) []*record.Record {
	records := make([]*record.Record, 0, len(msg.Mentions)+1)
	records = append(records, record.FromMessage(msg, c))
	for _, u := range msg.Mentions {
		records = append(records, record.FromMention(u.ID, msg, c))
	}
	return records
}

// reactionContext resolves the scope of reactions on msg, preferring the
// message's own guild and channel.
func reactionContext(msg platform.Message, c record.Context) record.Context {
	out := c
	if msg.GuildID != "" {
		out.GuildID = msg.GuildID
	}
	if msg.ChannelID != "" {
		out.ChannelID = msg.ChannelID
	}
	return out
}
