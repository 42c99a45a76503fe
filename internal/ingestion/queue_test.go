package ingestion

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

// blockingRunner holds every backfill until released or cancelled.
type blockingRunner struct {
	mu      sync.Mutex
	started []string
	release chan struct{}
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{release: make(chan struct{})}
}

func (r *blockingRunner) Backfill(ctx context.Context, guildID string) (*Report, error) {
	r.mu.Lock()
	r.started = append(r.started, guildID)
	r.mu.Unlock()

	select {
	case <-r.release:
		return &Report{GuildID: guildID, StartedAt: t0, FinishedAt: t0.Add(time.Second)}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *blockingRunner) startedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.started)
}

func TestQueue_RejectsDuplicateGuild(t *testing.T) {
	q := NewQueue(newBlockingRunner(), 4, 1)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.ErrorIs(t, q.TriggerBackfill("g-1"), ErrAlreadyRunning)
	require.NoError(t, q.TriggerBackfill("g-2"))
}

func TestQueue_RejectsWhenFull(t *testing.T) {
	q := NewQueue(newBlockingRunner(), 1, 1)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.ErrorIs(t, q.TriggerBackfill("g-2"), ErrQueueFull)

	running, _ := q.Status("g-2")
	require.False(t, running)
}

func TestQueue_RunsAndRecordsReport(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, 4, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.Eventually(t, func() bool { return runner.startedCount() == 1 }, time.Second, time.Millisecond)

	running, last := q.Status("g-1")
	require.True(t, running)
	require.Nil(t, last)

	close(runner.release)

	require.Eventually(t, func() bool {
		running, last := q.Status("g-1")
		return !running && last != nil
	}, time.Second, time.Millisecond)

	// finished guilds may be queued again
	require.NoError(t, q.TriggerBackfill("g-1"))
}

func TestQueue_CancelRunningBackfill(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, 4, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.Eventually(t, func() bool { return runner.startedCount() == 1 }, time.Second, time.Millisecond)

	require.True(t, q.Cancel("g-1"))
	require.False(t, q.Cancel("g-1"))

	require.Eventually(t, func() bool {
		running, _ := q.Status("g-1")
		return !running
	}, time.Second, time.Millisecond)

	_, last := q.Status("g-1")
	require.Nil(t, last)
}

func TestQueue_CancelQueuedBackfillSkipsIt(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, 4, 1)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.True(t, q.Cancel("g-1"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	require.Eventually(t, func() bool {
		running, _ := q.Status("g-1")
		return !running
	}, time.Second, time.Millisecond)
	require.Zero(t, runner.startedCount())
}

func TestQueue_CancelledQueuedGuildCanBeRequeued(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, 4, 1)

	require.NoError(t, q.TriggerBackfill("g-1"))
	require.True(t, q.Cancel("g-1"))

	running, _ := q.Status("g-1")
	require.False(t, running)
	require.False(t, q.Cancel("g-1"))
	require.NoError(t, q.TriggerBackfill("g-1"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	require.Eventually(t, func() bool { return runner.startedCount() == 1 }, time.Second, time.Millisecond)
	running, _ = q.Status("g-1")
	require.True(t, running)

	close(runner.release)
	require.Eventually(t, func() bool {
		running, last := q.Status("g-1")
		return !running && last != nil
	}, time.Second, time.Millisecond)

	// the stale task from the cancelled request never ran
	require.Equal(t, 1, runner.startedCount())
}

func TestQueue_CancelUnknownGuild(t *testing.T) {
	q := NewQueue(newBlockingRunner(), 4, 1)
	require.False(t, q.Cancel("g-unknown"))
}

type fakeEventSource struct {
	mu        sync.Mutex
	messages  []func(platform.Message)
	reactions []func(platform.ReactionAdd)
	guilds    []func(platform.Guild)
}

func (f *fakeEventSource) OnMessageCreate(h func(platform.Message)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, h)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.messages = nil
	}
}

func (f *fakeEventSource) OnReactionAdd(h func(platform.ReactionAdd)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reactions = append(f.reactions, h)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.reactions = nil
	}
}

func (f *fakeEventSource) OnGuildAvailable(h func(platform.Guild)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guilds = append(f.guilds, h)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.guilds = nil
	}
}

func (f *fakeEventSource) emitMessage(msg platform.Message) {
	f.mu.Lock()
	handlers := append([]func(platform.Message){}, f.messages...)
	f.mu.Unlock()
	for _, h := range handlers {
		h(msg)
	}
}

func (f *fakeEventSource) emitReaction(r platform.ReactionAdd) {
	f.mu.Lock()
	handlers := append([]func(platform.ReactionAdd){}, f.reactions...)
	f.mu.Unlock()
	for _, h := range handlers {
		h(r)
	}
}

func (f *fakeEventSource) emitGuild(g platform.Guild) {
	f.mu.Lock()
	handlers := append([]func(platform.Guild){}, f.guilds...)
	f.mu.Unlock()
	for _, h := range handlers {
		h(g)
	}
}

func TestQueue_TriggerOnGuildAvailable(t *testing.T) {
	q := NewQueue(newBlockingRunner(), 4, 1)
	source := &fakeEventSource{}

	remove := q.TriggerOnGuildAvailable(source)
	source.emitGuild(platform.Guild{ID: "g-1", Name: "Gophers"})
	// a second event for the same guild is logged and ignored
	source.emitGuild(platform.Guild{ID: "g-1", Name: "Gophers"})

	running, _ := q.Status("g-1")
	require.True(t, running)

	remove()
	source.emitGuild(platform.Guild{ID: "g-2"})
	running, _ = q.Status("g-2")
	require.False(t, running)
}
