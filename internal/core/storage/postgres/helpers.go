package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
)

// recordRow mirrors one row of the records table.
type recordRow struct {
	Kind       string         `db:"kind"`
	Key        string         `db:"key"`
	GuildID    string         `db:"guild_id"`
	ChannelID  string         `db:"channel_id"`
	OccurredAt sql.NullTime   `db:"occurred_at"`
	Fields     []byte         `db:"fields"`
	Content    sql.NullString `db:"content"`
}

// toRow converts a record into its row form.
// Empty fields produce "{}" rather than JSON "null".
func toRow(rec *record.Record) (recordRow, error) {
	fields := rec.Fields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return recordRow{}, fmt.Errorf("failed to marshal fields: %w", err)
	}

	return recordRow{
		Kind:       string(rec.Kind),
		Key:        rec.Key,
		GuildID:    rec.Scope.GuildID,
		ChannelID:  rec.Scope.ChannelID,
		OccurredAt: sql.NullTime{Time: rec.Timestamp.UTC(), Valid: rec.HasTimestamp()},
		Fields:     fieldsJSON,
		Content:    sql.NullString{String: rec.Content, Valid: rec.Kind == record.KindMessage},
	}, nil
}

func (r recordRow) toRecord() (*record.Record, error) {
	rec := &record.Record{
		Kind:    record.Kind(r.Kind),
		Key:     r.Key,
		Scope:   record.Scope{GuildID: r.GuildID, ChannelID: r.ChannelID},
		Content: r.Content.String,
	}
	if r.OccurredAt.Valid {
		rec.Timestamp = r.OccurredAt.Time.UTC()
	}
	if len(r.Fields) > 0 {
		if err := json.Unmarshal(r.Fields, &rec.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields of %s/%s: %w", r.Kind, r.Key, err)
		}
	}
	return rec, nil
}

// buildFilter renders the WHERE clause for a kind plus optional scope filters.
// Placeholders are numbered from $1 in argument order.
func buildFilter(kind record.Kind, filter storage.Filter) (string, []interface{}) {
	conditions := []string{"kind = $1"}
	args := []interface{}{string(kind)}

	if guild, ok := filter.Guild.Get(); ok {
		args = append(args, guild)
		conditions = append(conditions, fmt.Sprintf("guild_id = $%d", len(args)))
	}
	if channel, ok := filter.Channel.Get(); ok {
		args = append(args, channel)
		conditions = append(conditions, fmt.Sprintf("channel_id = $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}
