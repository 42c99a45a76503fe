package record

import (
	"github.com/google/uuid"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// Context carries what the event itself may not: the guild and channel the
// ingestion is running under. It is required on every codec call so the guild
// fallback never depends on call-site ordering.
type Context struct {
	GuildID   string
	ChannelID string
}

// keySeparator joins the two components of a hashed key (ASCII unit separator).
const keySeparator = "\x1f"

// Per-kind namespaces for content-derived keys. Changing either the namespace
// names, the component order or the separator is a storage migration.
var (
	reactionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("statsbot:record/reaction"))
	mentionNamespace  = uuid.NewSHA1(uuid.NameSpaceURL, []byte("statsbot:record/mention"))
)

// ReactionKey derives the reaction key from (emoji name, message ID) as a UUIDv5.
func ReactionKey(emoji, messageID string) string {
	return uuid.NewSHA1(reactionNamespace, []byte(emoji+keySeparator+messageID)).String()
}

// MentionKey derives the mention key from (mentioned user ID, message ID) as a UUIDv5.
func MentionKey(mentionedUserID, messageID string) string {
	return uuid.NewSHA1(mentionNamespace, []byte(mentionedUserID+keySeparator+messageID)).String()
}

// FromMessage maps a message to its record, keyed by the platform message ID.
// The message's own guild wins; the context guild is the fallback.
func FromMessage(msg platform.Message, c Context) *Record {
	scope := scopeOf(msg, c)

	fields := map[string]interface{}{
		FieldChannel: scope.ChannelID,
		FieldAuthor:  msg.AuthorID,
	}
	if scope.GuildID != "" {
		fields[FieldGuild] = scope.GuildID
	}

	return &Record{
		Kind:      KindMessage,
		Key:       msg.ID,
		Scope:     scope,
		Timestamp: msg.Timestamp.UTC(),
		Content:   msg.Content,
		Fields:    fields,
	}
}

// FromReaction maps the observed state of one emoji on a message. count is the
// last observed value and overwrites whatever was stored before.
func FromReaction(emoji string, count int, messageID string, c Context) *Record {
	return &Record{
		Kind:  KindReaction,
		Key:   ReactionKey(emoji, messageID),
		Scope: Scope{GuildID: c.GuildID, ChannelID: c.ChannelID},
		Fields: map[string]interface{}{
			FieldEmoji:   emoji,
			FieldCount:   count,
			FieldMessage: messageID,
		},
	}
}

// FromMention maps one mentioned user of msg.
func FromMention(mentionedUserID string, msg platform.Message, c Context) *Record {
	return &Record{
		Kind:  KindMention,
		Key:   MentionKey(mentionedUserID, msg.ID),
		Scope: scopeOf(msg, c),
		Fields: map[string]interface{}{
			FieldAuthor:        msg.AuthorID,
			FieldMentionedUser: mentionedUserID,
			FieldMessage:       msg.ID,
		},
	}
}

// FromAttachment maps one attachment of msg, keyed by the platform attachment ID.
func FromAttachment(att platform.Attachment, msg platform.Message, c Context) *Record {
	return &Record{
		Kind:  KindAttachment,
		Key:   att.ID,
		Scope: scopeOf(msg, c),
		Fields: map[string]interface{}{
			FieldAuthor:   msg.AuthorID,
			FieldFileName: att.FileName,
			FieldURL:      att.URL,
		},
	}
}

func scopeOf(msg platform.Message, c Context) Scope {
	s := Scope{GuildID: msg.GuildID, ChannelID: msg.ChannelID}
	if s.GuildID == "" {
		s.GuildID = c.GuildID
	}
	if s.ChannelID == "" {
		s.ChannelID = c.ChannelID
	}
	return s
}
