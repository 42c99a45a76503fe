package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
)

// ErrUnknownKind is returned for a kind outside the four supported record kinds.
var ErrUnknownKind = errors.New("unknown record kind")

// Filter narrows a deletion. Present values are ANDed; an empty filter matches the whole kind.
type Filter struct {
	Guild   mo.Option[string]
	Channel mo.Option[string]
}

// FilterFrom builds a filter where empty strings mean "not filtered".
func FilterFrom(guildID, channelID string) Filter {
	f := Filter{
		Guild:   mo.None[string](),
		Channel: mo.None[string](),
	}
	if guildID != "" {
		f.Guild = mo.Some(guildID)
	}
	if channelID != "" {
		f.Channel = mo.Some(channelID)
	}
	return f
}

// Matches reports whether a record scope satisfies the filter.
func (f Filter) Matches(scope record.Scope) bool {
	if guild, ok := f.Guild.Get(); ok && scope.GuildID != guild {
		return false
	}
	if channel, ok := f.Channel.Get(); ok && scope.ChannelID != channel {
		return false
	}
	return true
}

func (f Filter) String() string {
	return fmt.Sprintf("guild=%s channel=%s", f.Guild.OrElse("*"), f.Channel.OrElse("*"))
}

// RecordStore is the gateway to the document store.
// It never retries; store failures are returned to the caller.
type RecordStore interface {
	// Get returns mo.None when no record exists under (kind, key).
	Get(ctx context.Context, kind record.Kind, key string) (mo.Option[*record.Record], error)

	// Put inserts or overwrites the record in one atomic write.
	Put(ctx context.Context, rec *record.Record) error

	// DeleteWhere removes every record of kind matching the filter, in bounded
	// batches, and returns how many were deleted.
	DeleteWhere(ctx context.Context, kind record.Kind, filter Filter) (int64, error)

	// OldestTimestamp returns the earliest record timestamp of kind. When the kind
	// has no timestamped records it returns the current time; that value is a
	// "nothing to catch up from" sentinel, not data.
	OldestTimestamp(ctx context.Context, kind record.Kind) (time.Time, error)

	// ChannelMessages returns every message record of a channel ordered by
	// timestamp, then key.
	ChannelMessages(ctx context.Context, channelID string) ([]*record.Record, error)

	Ping(ctx context.Context) error
}

// ValidateKind wraps ErrUnknownKind for invalid kinds.
func ValidateKind(kind record.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}
