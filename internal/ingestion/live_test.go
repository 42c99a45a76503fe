package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage/memory"
	"github.com/statsbot-lab/guild-stats/internal/metrics"
	platformmocks "github.com/statsbot-lab/guild-stats/internal/mocks/platform"
	storagemocks "github.com/statsbot-lab/guild-stats/internal/mocks/storage"
	"github.com/statsbot-lab/guild-stats/internal/platform"
)

func TestLiveLoader_HandleMessageStoresMessageAndMentions(t *testing.T) {
	store := memory.NewStore()
	l := NewLiveLoader(platformmocks.NewClient(t), store, LiveOptions{BufferSize: 4}, nil)

	msg := historyMessage("m-1", "c-1", "u-1", t0)
	msg.GuildID = "g-1"
	msg.Mentions = []platform.User{{ID: "u-2"}, {ID: "u-3"}}
	msg.Attachments = []platform.Attachment{{ID: "a-1"}}

	require.NoError(t, l.HandleMessage(context.Background(), msg))

	stored, err := store.Get(context.Background(), record.KindMessage, "m-1")
	require.NoError(t, err)
	require.Equal(t, "g-1", stored.MustGet().String(record.FieldGuild))
	require.Equal(t, 2, store.Len(record.KindMention))
	require.Zero(t, store.Len(record.KindAttachment))
}

func TestLiveLoader_HandleReactionResolvesAggregateCount(t *testing.T) {
	client := platformmocks.NewClient(t)
	store := memory.NewStore()

	client.EXPECT().FetchMessage(mock.Anything, "c-1", "m-1").Return(platform.Message{
		ID: "m-1",
		Reactions: []platform.Reaction{
			{Emoji: "🎉", Count: 2},
			{Emoji: "👍", Count: 7},
		},
	}, nil)

	l := NewLiveLoader(client, store, LiveOptions{ResolveReactionCounts: true}, nil)
	err := l.HandleReaction(context.Background(), platform.ReactionAdd{
		MessageID: "m-1", ChannelID: "c-1", GuildID: "g-1", UserID: "u-9", Emoji: "👍",
	})
	require.NoError(t, err)

	stored, err := store.Get(context.Background(), record.KindReaction, record.ReactionKey("👍", "m-1"))
	require.NoError(t, err)
	rec := stored.MustGet()
	require.Equal(t, 7, rec.Int(record.FieldCount))
	require.Equal(t, "g-1", rec.Scope.GuildID)
	require.Equal(t, "c-1", rec.Scope.ChannelID)
}

func TestLiveLoader_HandleReactionFallsBackToOne(t *testing.T) {
	tests := []struct {
		name    string
		resolve bool
		fetched platform.Message
		err     error
	}{
		{name: "resolution disabled"},
		{name: "lookup fails", resolve: true, err: &platform.APIError{StatusCode: 404, Message: "Unknown Message"}},
		{name: "emoji missing", resolve: true, fetched: platform.Message{ID: "m-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := platformmocks.NewClient(t)
			if tt.resolve {
				client.EXPECT().FetchMessage(mock.Anything, "c-1", "m-1").Return(tt.fetched, tt.err)
			}
			store := memory.NewStore()

			l := NewLiveLoader(client, store, LiveOptions{ResolveReactionCounts: tt.resolve}, nil)
			require.NoError(t, l.HandleReaction(context.Background(), platform.ReactionAdd{
				MessageID: "m-1", ChannelID: "c-1", Emoji: "👍",
			}))

			stored, err := store.Get(context.Background(), record.KindReaction, record.ReactionKey("👍", "m-1"))
			require.NoError(t, err)
			require.Equal(t, 1, stored.MustGet().Int(record.FieldCount))
		})
	}
}

func TestLiveLoader_StoreFailureIsReturned(t *testing.T) {
	store := storagemocks.NewRecordStore(t)
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	l := NewLiveLoader(platformmocks.NewClient(t), store, LiveOptions{}, nil)
	err := l.HandleMessage(context.Background(), historyMessage("m-1", "c-1", "u-1", t0))
	require.ErrorContains(t, err, "connection reset")
}

func TestLiveLoader_SubscribersRunIndependently(t *testing.T) {
	store := storagemocks.NewRecordStore(t)
	store.EXPECT().Put(mock.Anything, mock.MatchedBy(func(r *record.Record) bool {
		return r.Kind == record.KindMessage
	})).Return(errors.New("disk full"))

	healthy := memory.NewStore()
	store.EXPECT().Put(mock.Anything, mock.MatchedBy(func(r *record.Record) bool {
		return r.Kind == record.KindReaction
	})).RunAndReturn(healthy.Put)

	m := metrics.New()
	l := NewLiveLoader(platformmocks.NewClient(t), store, LiveOptions{BufferSize: 2}, m)
	source := &fakeEventSource{}
	remove := l.Subscribe(source)
	defer remove()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	source.emitMessage(historyMessage("m-1", "c-1", "u-1", t0))
	source.emitReaction(platform.ReactionAdd{MessageID: "m-1", ChannelID: "c-1", Emoji: "👍"})

	require.Eventually(t, func() bool { return healthy.Len(record.KindReaction) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		return strings.Contains(rec.Body.String(),
			`statsbot_live_events_total{result="error",subscriber="message-create"} 1`)
	}, time.Second, time.Millisecond)

	cancel()
	<-done
}
