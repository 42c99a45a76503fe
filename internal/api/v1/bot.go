package v1

import (
	"time"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Channel struct {
	ID      string `json:"id"`
	GuildID string `json:"guild_id"`
	Name    string `json:"name"`
	Text    bool   `json:"text"`
}

func FromGuilds(guilds []platform.Guild) []Guild {
	out := make([]Guild, 0, len(guilds))
	for _, g := range guilds {
		out = append(out, Guild{ID: g.ID, Name: g.Name})
	}
	return out
}

func FromChannels(channels []platform.Channel) []Channel {
	out := make([]Channel, 0, len(channels))
	for _, c := range channels {
		out = append(out, Channel{ID: c.ID, GuildID: c.GuildID, Name: c.Name, Text: c.IsText()})
	}
	return out
}

// ChannelBackfill is the outcome of one channel within a backfill.
type ChannelBackfill struct {
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	State       string `json:"state"`
	Messages    int    `json:"messages"`
	Error       string `json:"error,omitempty"`
}

// BackfillStatus reports whether a guild backfill is in flight and the last finished run.
type BackfillStatus struct {
	GuildID    string            `json:"guild_id"`
	Running    bool              `json:"running"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
	Channels   []ChannelBackfill `json:"channels,omitempty"`
}
