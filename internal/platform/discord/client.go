package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// maxPageSize is the largest page the message history endpoint accepts.
const maxPageSize = 100

// Client implements platform.Client and platform.EventSource on a discordgo session.
type Client struct {
	session *discordgo.Session
}

var (
	_ platform.Client      = (*Client)(nil)
	_ platform.EventSource = (*Client)(nil)
)

// NewClient creates a bot session. The gateway is not opened until Open is called,
// so event handlers can be registered first.
func NewClient(botToken string, httpClient *http.Client) (*Client, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	if httpClient != nil {
		session.Client = httpClient
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	return &Client{session: session}, nil
}

// Open connects to the gateway. Reconnects and heartbeats are handled by discordgo.
func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	slog.Info("[Discord] Gateway session opened")
	return nil
}

// Close shuts the gateway connection down.
func (c *Client) Close() error {
	if err := c.session.Close(); err != nil {
		return fmt.Errorf("failed to close Discord session: %w", err)
	}
	slog.Info("[Discord] Gateway session closed")
	return nil
}

// ListGuilds returns the guilds the bot is currently a member of, from gateway state.
func (c *Client) ListGuilds(ctx context.Context) ([]platform.Guild, error) {
	state := c.session.State
	if state == nil {
		return nil, errors.New("discord state tracking is disabled")
	}

	state.RLock()
	defer state.RUnlock()

	guilds := make([]platform.Guild, 0, len(state.Guilds))
	for _, g := range state.Guilds {
		guilds = append(guilds, platform.Guild{ID: g.ID, Name: g.Name})
	}
	return guilds, nil
}

func (c *Client) ListGuildChannels(ctx context.Context, guildID string) ([]platform.Channel, error) {
	channels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapError(err)
	}

	result := make([]platform.Channel, 0, len(channels))
	for _, ch := range channels {
		result = append(result, toChannel(ch))
	}
	return result, nil
}

func (c *Client) FetchMessagePage(ctx context.Context, channelID, before string, limit int) ([]platform.Message, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	messages, err := c.session.ChannelMessages(channelID, limit, before, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapError(err)
	}

	page := make([]platform.Message, 0, len(messages))
	for _, m := range messages {
		page = append(page, toMessage(m))
	}
	return page, nil
}

func (c *Client) FetchMessage(ctx context.Context, channelID, messageID string) (platform.Message, error) {
	m, err := c.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return platform.Message{}, wrapError(err)
	}
	return toMessage(m), nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (platform.User, error) {
	u, err := c.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return platform.User{}, wrapError(err)
	}
	return toUser(u), nil
}

func (c *Client) GetChannel(ctx context.Context, channelID string) (platform.Channel, error) {
	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return platform.Channel{}, wrapError(err)
	}
	return toChannel(ch), nil
}

func (c *Client) SendEmbed(ctx context.Context, channelID, title, description string) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
	}
	if _, err := c.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError converts discordgo REST failures into platform.APIError so callers can
// log the HTTP status without importing the SDK.
func wrapError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	apiErr := &platform.APIError{Err: err}
	if restErr.Response != nil {
		apiErr.StatusCode = restErr.Response.StatusCode
		apiErr.Message = restErr.Response.Status
	}
	if restErr.Message != nil {
		apiErr.Code = restErr.Message.Code
		if restErr.Message.Message != "" {
			apiErr.Message = restErr.Message.Message
		}
	}
	return apiErr
}
