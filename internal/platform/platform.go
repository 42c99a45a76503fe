package platform

import (
	"context"
	"fmt"
	"time"
)

// ChannelType classifies a channel by what it can carry.
type ChannelType int

const (
	ChannelTypeOther ChannelType = iota
	ChannelTypeText
	ChannelTypeAnnouncement
	ChannelTypeVoice
	ChannelTypeCategory
	ChannelTypeThread
)

// Guild is a top-level community grouping of channels.
type Guild struct {
	ID   string
	Name string
}

// Channel is a message stream within a guild.
type Channel struct {
	ID      string
	GuildID string
	Name    string
	Type    ChannelType
}

// IsText reports whether the channel holds a regular message history.
func (c Channel) IsText() bool {
	return c.Type == ChannelTypeText || c.Type == ChannelTypeAnnouncement
}

// User is the subset of a platform account the pipeline needs.
type User struct {
	ID          string
	Username    string
	DisplayName string
	Bot         bool
}

// Name returns the display name, falling back to the account username.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Reaction is the aggregate state of one emoji on a message.
type Reaction struct {
	Emoji string
	Count int
}

// Attachment is a file attached to a message.
type Attachment struct {
	ID       string
	FileName string
	URL      string
}

// Message is a normalized chat message.
// GuildID is empty when the platform did not include it (history endpoints).
type Message struct {
	ID          string
	ChannelID   string
	GuildID     string
	AuthorID    string
	Content     string
	Timestamp   time.Time
	Reactions   []Reaction
	Mentions    []User
	Attachments []Attachment
}

// ReactionAdd is a single live reaction event. It carries no aggregate count.
type ReactionAdd struct {
	MessageID string
	ChannelID string
	GuildID   string
	UserID    string
	Emoji     string
}

// Client is the request/response side of the chat platform.
type Client interface {
	ListGuilds(ctx context.Context) ([]Guild, error)
	ListGuildChannels(ctx context.Context, guildID string) ([]Channel, error)

	// FetchMessagePage returns up to limit messages older than before, newest first.
	// An empty before starts from the latest message. An empty page means history is exhausted.
	FetchMessagePage(ctx context.Context, channelID, before string, limit int) ([]Message, error)
	FetchMessage(ctx context.Context, channelID, messageID string) (Message, error)

	GetUser(ctx context.Context, userID string) (User, error)
	GetChannel(ctx context.Context, channelID string) (Channel, error)

	SendEmbed(ctx context.Context, channelID, title, description string) error
}

// EventSource delivers gateway events. Handlers may be invoked concurrently.
type EventSource interface {
	OnMessageCreate(handler func(Message)) (remove func())
	OnReactionAdd(handler func(ReactionAdd)) (remove func())
	OnGuildAvailable(handler func(Guild)) (remove func())
}

// APIError is a platform access error: rate limited, forbidden, not found.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform request failed: status %d, code %d: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
