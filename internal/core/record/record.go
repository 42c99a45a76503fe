package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind names one of the four persisted record kinds.
type Kind string

const (
	KindMessage    Kind = "message"
	KindReaction   Kind = "reaction"
	KindMention    Kind = "mention"
	KindAttachment Kind = "attachment"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindMessage, KindReaction, KindMention, KindAttachment}

// ParseKind validates a kind name received from outside the process.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown record kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMessage, KindReaction, KindMention, KindAttachment:
		return true
	}
	return false
}

// Field names. These are the persisted property names and part of the storage format.
const (
	FieldChannel       = "channel"
	FieldAuthor        = "author"
	FieldGuild         = "guild"
	FieldEmoji         = "emoji"
	FieldCount         = "count"
	FieldMessage       = "message"
	FieldMentionedUser = "mentionedUser"
	FieldFileName      = "fileName"
	FieldURL           = "url"
)

// Scope is the guild/channel a record was ingested under. It is indexing metadata
// used by filtered deletion, not part of the record's field set.
type Scope struct {
	GuildID   string
	ChannelID string
}

// Record is one persisted document.
//
// Timestamp is set for messages only and is the zero time otherwise.
// Content is the unindexed message body.
type Record struct {
	Kind      Kind
	Key       string
	Scope     Scope
	Timestamp time.Time
	Content   string
	Fields    map[string]interface{}
}

// String returns a string field, or "" when absent.
func (r *Record) String(field string) string {
	if r == nil || r.Fields == nil {
		return ""
	}
	if s, ok := r.Fields[field].(string); ok {
		return s
	}
	return ""
}

// Int returns an integer field. JSON round-trips turn numbers into float64
// or json.Number, both are accepted.
func (r *Record) Int(field string) int {
	if r == nil || r.Fields == nil {
		return 0
	}
	switch v := r.Fields[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	}
	return 0
}

// HasTimestamp reports whether the record carries an ordering timestamp.
func (r *Record) HasTimestamp() bool {
	return r != nil && !r.Timestamp.IsZero()
}
