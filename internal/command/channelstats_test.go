package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	platformmocks "github.com/statsbot-lab/guild-stats/internal/mocks/platform"
	"github.com/statsbot-lab/guild-stats/internal/platform"
	"github.com/statsbot-lab/guild-stats/internal/stats"
)

type stubStats struct {
	result *stats.ChannelStats
	err    error
	calls  []string
}

func (s *stubStats) ChannelStats(ctx context.Context, channelID string) (*stats.ChannelStats, error) {
	s.calls = append(s.calls, channelID)
	return s.result, s.err
}

func commandMessage(content string) platform.Message {
	return platform.Message{ID: "m-1", ChannelID: "c-reply", AuthorID: "u-1", Content: content}
}

func TestChannelMentions(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{content: "!channelstats", want: []string{}},
		{content: "!channelstats <#123>", want: []string{"123"}},
		{content: "!channelstats <#!456>", want: []string{"456"}},
		{content: "!channelstats <#1> and <#2>", want: []string{"1", "2"}},
		{content: "!channelstats #general <@789>", want: []string{}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ChannelMentions(tt.content), tt.content)
	}
}

func TestHandle_IgnoresOtherMessages(t *testing.T) {
	client := platformmocks.NewClient(t)
	source := &stubStats{}

	err := NewChannelStatsCommand(client, source, 1, nil).Handle(context.Background(), commandMessage("hello <#123>"))
	require.NoError(t, err)
	require.Empty(t, source.calls)
}

func TestHandle_RequiresExactlyOneChannel(t *testing.T) {
	for _, content := range []string{"!channelstats", "!channelstats <#1> <#2>"} {
		client := platformmocks.NewClient(t)
		client.EXPECT().SendEmbed(mock.Anything, "c-reply", "Invalid request", descSingleChannel).Return(nil).Once()

		err := NewChannelStatsCommand(client, &stubStats{}, 1, nil).Handle(context.Background(), commandMessage(content))
		require.NoError(t, err)
	}
}

func TestHandle_RejectsNonTextChannel(t *testing.T) {
	client := platformmocks.NewClient(t)
	client.EXPECT().GetChannel(mock.Anything, "42").Return(platform.Channel{ID: "42", Type: platform.ChannelTypeVoice}, nil)
	client.EXPECT().SendEmbed(mock.Anything, "c-reply", "Invalid request", descTextChannel).Return(nil).Once()

	source := &stubStats{}
	err := NewChannelStatsCommand(client, source, 1, nil).Handle(context.Background(), commandMessage("!channelstats <#42>"))
	require.NoError(t, err)
	require.Empty(t, source.calls)
}

func TestHandle_RepliesWithStats(t *testing.T) {
	client := platformmocks.NewClient(t)
	client.EXPECT().GetChannel(mock.Anything, "42").Return(platform.Channel{ID: "42", Name: "general", Type: platform.ChannelTypeText}, nil)

	var description string
	client.EXPECT().SendEmbed(mock.Anything, "c-reply", "Channel stats", mock.Anything).
		Run(func(ctx context.Context, channelID, title, desc string) { description = desc }).
		Return(nil).Once()

	source := &stubStats{result: &stats.ChannelStats{
		ChannelName:    "general",
		MessagesCount:  8,
		MessagesPerDay: 4,
		TopUsers:       []stats.UserStats{{UserName: "bob", MessagesCount: 5}},
	}}

	err := NewChannelStatsCommand(client, source, 1, nil).Handle(context.Background(), commandMessage("!channelstats <#42>"))
	require.NoError(t, err)
	require.Equal(t, []string{"42"}, source.calls)

	require.True(t, strings.HasPrefix(description, "```json\n{\n"))
	require.True(t, strings.HasSuffix(description, "}\n```"))
	require.Contains(t, description, `"channelName": "general"`)
	require.Contains(t, description, `"userName": "bob"`)
}

func TestHandle_StatsFailureRepliesAndReturnsError(t *testing.T) {
	client := platformmocks.NewClient(t)
	client.EXPECT().GetChannel(mock.Anything, "42").Return(platform.Channel{ID: "42", Type: platform.ChannelTypeAnnouncement}, nil)
	client.EXPECT().SendEmbed(mock.Anything, "c-reply", "Request failed", descFailed).Return(nil).Once()

	source := &stubStats{err: errors.New("store unavailable")}
	err := NewChannelStatsCommand(client, source, 1, nil).Handle(context.Background(), commandMessage("!channelstats <#42>"))
	require.ErrorContains(t, err, "store unavailable")
}

func TestHandle_ChannelLookupFailure(t *testing.T) {
	client := platformmocks.NewClient(t)
	client.EXPECT().GetChannel(mock.Anything, "42").
		Return(platform.Channel{}, &platform.APIError{StatusCode: 404, Code: 10003, Message: "Unknown Channel"})

	err := NewChannelStatsCommand(client, &stubStats{}, 1, nil).Handle(context.Background(), commandMessage("!channelstats <#42>"))
	var apiErr *platform.APIError
	require.ErrorAs(t, err, &apiErr)
}
