package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httperr "github.com/statsbot-lab/guild-stats/internal/core/errors"
	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage/memory"
	identitymocks "github.com/statsbot-lab/guild-stats/internal/mocks/identity"
	storagemocks "github.com/statsbot-lab/guild-stats/internal/mocks/storage"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

var day0 = time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)

func putMessage(t *testing.T, store *memory.Store, id, channelID, author string, at time.Time) {
	t.Helper()
	msg := platform.Message{ID: id, ChannelID: channelID, AuthorID: author, Timestamp: at}
	require.NoError(t, store.Put(context.Background(), record.FromMessage(msg, record.Context{GuildID: "g-1"})))
}

func TestDayBucket(t *testing.T) {
	tests := []struct {
		at   time.Time
		want int64
	}{
		{at: time.Unix(0, 0), want: 0},
		{at: time.Unix(86399, 0), want: 0},
		{at: time.Unix(86400, 0), want: 1},
		{at: time.Unix(-1, 0), want: -1},
		{at: time.Date(1970, 1, 2, 10, 0, 0, 0, time.FixedZone("UTC+9", 9*3600)), want: 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DayBucket(tt.at), tt.at.String())
	}
}

func TestChannelStats_AveragesOnlyActiveDays(t *testing.T) {
	store := memory.NewStore()
	for i := 0; i < 3; i++ {
		putMessage(t, store, fmt.Sprintf("a-%d", i), "c-1", "u-1", day0.Add(time.Duration(i)*time.Hour))
	}
	// five days of silence in between
	for i := 0; i < 5; i++ {
		putMessage(t, store, fmt.Sprintf("b-%d", i), "c-1", "u-2", day0.AddDate(0, 0, 6).Add(time.Duration(i)*time.Minute))
	}
	putMessage(t, store, "other", "c-2", "u-3", day0)

	resolver := identitymocks.NewResolver(t)
	resolver.EXPECT().UserName(mock.Anything, "u-1").Return("alice", nil)
	resolver.EXPECT().UserName(mock.Anything, "u-2").Return("bob", nil)
	resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("general", nil)

	got, err := NewService(store, resolver, Options{}, nil).ChannelStats(context.Background(), "c-1")
	require.NoError(t, err)

	require.Equal(t, "general", got.ChannelName)
	require.Equal(t, 8, got.MessagesCount)
	require.Equal(t, 4.0, got.MessagesPerDay)
	require.Equal(t, []UserStats{
		{UserName: "bob", MessagesCount: 5},
		{UserName: "alice", MessagesCount: 3},
	}, got.TopUsers)
}

func TestChannelStats_EmptyChannel(t *testing.T) {
	resolver := identitymocks.NewResolver(t)
	resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("general", nil)

	got, err := NewService(memory.NewStore(), resolver, Options{}, nil).ChannelStats(context.Background(), "c-1")
	require.NoError(t, err)
	require.Zero(t, got.MessagesCount)
	require.Zero(t, got.MessagesPerDay)
	require.Empty(t, got.TopUsers)
}

func TestChannelStats_TopTenOfTwelveAuthors(t *testing.T) {
	store := memory.NewStore()
	resolver := identitymocks.NewResolver(t)

	// u-00 posts 12 messages, u-01 posts 11, ... u-11 posts 1.
	at := day0
	for i := 0; i < 12; i++ {
		author := fmt.Sprintf("u-%02d", i)
		for j := 0; j < 12-i; j++ {
			putMessage(t, store, fmt.Sprintf("m-%02d-%02d", i, j), "c-1", author, at)
			at = at.Add(time.Minute)
		}
		resolver.EXPECT().UserName(mock.Anything, author).Return("name-"+author, nil).Once()
	}
	resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("general", nil)

	got, err := NewService(store, resolver, Options{}, nil).ChannelStats(context.Background(), "c-1")
	require.NoError(t, err)

	want := make([]UserStats, 0, 10)
	for i := 0; i < 10; i++ {
		want = append(want, UserStats{UserName: fmt.Sprintf("name-u-%02d", i), MessagesCount: 12 - i})
	}
	require.Equal(t, want, got.TopUsers)
	require.Equal(t, 78, got.MessagesCount)
}

func TestChannelStats_TopTenWithFirstAppearanceTies(t *testing.T) {
	store := memory.NewStore()
	resolver := identitymocks.NewResolver(t)

	// u-00 .. u-11 each post i+1 messages, except u-10 and u-11 who tie with u-00.
	at := day0
	for i := 0; i < 12; i++ {
		author := fmt.Sprintf("u-%02d", i)
		n := i + 1
		if i >= 10 {
			n = 1
		}
		for j := 0; j < n; j++ {
			putMessage(t, store, fmt.Sprintf("m-%02d-%02d", i, j), "c-1", author, at)
			at = at.Add(time.Minute)
		}
		resolver.EXPECT().UserName(mock.Anything, author).Return("name-"+author, nil).Once()
	}
	resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("general", nil)

	got, err := NewService(store, resolver, Options{TopUsers: 10, LookupConcurrency: 3}, nil).
		ChannelStats(context.Background(), "c-1")
	require.NoError(t, err)

	require.Len(t, got.TopUsers, 10)
	require.Equal(t, UserStats{UserName: "name-u-09", MessagesCount: 10}, got.TopUsers[0])
	require.Equal(t, UserStats{UserName: "name-u-01", MessagesCount: 2}, got.TopUsers[8])
	// u-00, u-10 and u-11 all have one message; u-00 appeared first
	require.Equal(t, UserStats{UserName: "name-u-00", MessagesCount: 1}, got.TopUsers[9])
}

func TestChannelStats_FailsClosed(t *testing.T) {
	t.Run("store failure", func(t *testing.T) {
		store := storagemocks.NewRecordStore(t)
		store.EXPECT().ChannelMessages(mock.Anything, "c-1").Return(nil, errors.New("connection refused"))

		_, err := NewService(store, identitymocks.NewResolver(t), Options{}, nil).ChannelStats(context.Background(), "c-1")
		require.ErrorContains(t, err, "connection refused")
	})

	t.Run("author lookup failure", func(t *testing.T) {
		store := memory.NewStore()
		putMessage(t, store, "m-1", "c-1", "u-1", day0)
		putMessage(t, store, "m-2", "c-1", "u-2", day0)

		resolver := identitymocks.NewResolver(t)
		resolver.EXPECT().UserName(mock.Anything, "u-1").Return("alice", nil).Maybe()
		resolver.EXPECT().UserName(mock.Anything, "u-2").
			Return("", &platform.APIError{StatusCode: 404, Code: 10013, Message: "Unknown User"})

		_, err := NewService(store, resolver, Options{}, nil).ChannelStats(context.Background(), "c-1")
		var apiErr *platform.APIError
		require.ErrorAs(t, err, &apiErr)
	})

	t.Run("channel lookup failure", func(t *testing.T) {
		store := memory.NewStore()
		putMessage(t, store, "m-1", "c-1", "u-1", day0)

		resolver := identitymocks.NewResolver(t)
		resolver.EXPECT().UserName(mock.Anything, "u-1").Return("alice", nil)
		resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("", errors.New("rate limited"))

		_, err := NewService(store, resolver, Options{}, nil).ChannelStats(context.Background(), "c-1")
		require.ErrorContains(t, err, "rate limited")
	})
}

func TestHandleChannelStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	putMessage(t, store, "m-1", "c-1", "u-1", day0)

	resolver := identitymocks.NewResolver(t)
	resolver.EXPECT().UserName(mock.Anything, "u-1").Return("alice", nil)
	resolver.EXPECT().ChannelName(mock.Anything, "c-1").Return("general", nil)

	r := gin.New()
	NewService(store, resolver, Options{}, nil).RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/bot/channels/c-1/user-stats", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{
		"channelName": "general",
		"messagesCount": 1,
		"messagesPerDay": 1,
		"topUsers": [{"userName": "alice", "messagesCount": 1}]
	}`, resp.Body.String())
}

func TestHandleChannelStats_PlatformError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := identitymocks.NewResolver(t)
	resolver.EXPECT().ChannelName(mock.Anything, "c-x").
		Return("", &platform.APIError{StatusCode: 404, Code: 10003, Message: "Unknown Channel"})

	r := gin.New()
	NewService(memory.NewStore(), resolver, Options{}, nil).RegisterRoutes(r)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/bot/channels/c-x/user-stats", nil))
	require.Equal(t, http.StatusBadGateway, resp.Code)

	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, httperr.HttpPlatformError, body.ErrorType)
}
