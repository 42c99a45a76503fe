package v1

import (
	"time"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
)

// Record is the JSON shape of a stored record.
type Record struct {
	Kind      string                 `json:"kind"`
	Key       string                 `json:"key"`
	GuildID   string                 `json:"guild_id,omitempty"`
	ChannelID string                 `json:"channel_id,omitempty"`
	Timestamp *time.Time             `json:"timestamp,omitempty"`
	Content   string                 `json:"content,omitempty"`
	Fields    map[string]interface{} `json:"fields"`
}

// FromRecord converts a stored record. Reactions carry no timestamp, so the
// field is omitted for them.
func FromRecord(rec *record.Record) Record {
	out := Record{
		Kind:      string(rec.Kind),
		Key:       rec.Key,
		GuildID:   rec.Scope.GuildID,
		ChannelID: rec.Scope.ChannelID,
		Content:   rec.Content,
		Fields:    rec.Fields,
	}
	if out.Fields == nil {
		out.Fields = map[string]interface{}{}
	}
	if rec.HasTimestamp() {
		ts := rec.Timestamp.UTC()
		out.Timestamp = &ts
	}
	return out
}

// DeleteResult is returned by filtered deletion.
type DeleteResult struct {
	Kind    string `json:"kind"`
	Guild   string `json:"guild,omitempty"`
	Channel string `json:"channel,omitempty"`
	Deleted int64  `json:"deleted"`
}

// OldestTimestamp is returned by the oldest-timestamp query.
type OldestTimestamp struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}
