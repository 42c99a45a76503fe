package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// OnMessageCreate registers a message-create handler. Messages authored by the bot
// itself are still delivered; filtering is the subscriber's decision.
func (c *Client) OnMessageCreate(handler func(platform.Message)) func() {
	return c.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m == nil || m.Message == nil {
			return
		}
		handler(toMessage(m.Message))
	})
}

func (c *Client) OnReactionAdd(handler func(platform.ReactionAdd)) func() {
	return c.session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r == nil || r.MessageReaction == nil {
			return
		}
		handler(toReactionAdd(r.MessageReaction))
	})
}

// OnGuildAvailable fires for every guild delivered by the gateway after connect,
// and for guilds the bot joins later.
func (c *Client) OnGuildAvailable(handler func(platform.Guild)) func() {
	return c.session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if g == nil || g.Guild == nil {
			return
		}
		if g.Unavailable {
			slog.Warn("[Discord] Guild unavailable, skipping", "guild_id", g.ID)
			return
		}
		handler(platform.Guild{ID: g.ID, Name: g.Name})
	})
}
