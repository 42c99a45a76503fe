package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

func toChannel(ch *discordgo.Channel) platform.Channel {
	if ch == nil {
		return platform.Channel{}
	}
	return platform.Channel{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
		Type:    toChannelType(ch.Type),
	}
}

func toChannelType(t discordgo.ChannelType) platform.ChannelType {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return platform.ChannelTypeText
	case discordgo.ChannelTypeGuildNews:
		return platform.ChannelTypeAnnouncement
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return platform.ChannelTypeVoice
	case discordgo.ChannelTypeGuildCategory:
		return platform.ChannelTypeCategory
	case discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread,
		discordgo.ChannelTypeGuildNewsThread:
		return platform.ChannelTypeThread
	default:
		return platform.ChannelTypeOther
	}
}

func toUser(u *discordgo.User) platform.User {
	if u == nil {
		return platform.User{}
	}
	return platform.User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.GlobalName,
		Bot:         u.Bot,
	}
}

func toMessage(m *discordgo.Message) platform.Message {
	if m == nil {
		return platform.Message{}
	}

	msg := platform.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Content:   m.Content,
		Timestamp: m.Timestamp.UTC(),
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
	}

	for _, r := range m.Reactions {
		if r == nil || r.Emoji == nil {
			continue
		}
		msg.Reactions = append(msg.Reactions, platform.Reaction{
			Emoji: r.Emoji.Name,
			Count: r.Count,
		})
	}

	for _, u := range m.Mentions {
		if u == nil {
			continue
		}
		msg.Mentions = append(msg.Mentions, toUser(u))
	}

	for _, a := range m.Attachments {
		if a == nil {
			continue
		}
		url := a.ProxyURL
		if url == "" {
			url = a.URL
		}
		msg.Attachments = append(msg.Attachments, platform.Attachment{
			ID:       a.ID,
			FileName: a.Filename,
			URL:      url,
		})
	}

	return msg
}

func toReactionAdd(r *discordgo.MessageReaction) platform.ReactionAdd {
	if r == nil {
		return platform.ReactionAdd{}
	}
	return platform.ReactionAdd{
		MessageID: r.MessageID,
		ChannelID: r.ChannelID,
		GuildID:   r.GuildID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.Name,
	}
}
