package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/statsbot-lab/guild-stats/internal/platform"
)

var (
	ErrAlreadyRunning = errors.New("backfill already queued or running for guild")
	ErrQueueFull      = errors.New("backfill queue is full")
)

// Runner performs one guild backfill.
type Runner interface {
	Backfill(ctx context.Context, guildID string) (*Report, error)
}

type queueEntry struct {
	guildID   string
	cancel    context.CancelFunc // nil while queued
	cancelled bool
}

// Queue accepts fire-and-forget backfill requests and runs them on a fixed
// number of workers. A guild is never queued or running twice at once.
type Queue struct {
	runner  Runner
	tasks   chan *queueEntry
	workers int

	mu      sync.Mutex
	active  map[string]*queueEntry
	reports map[string]*Report
}

func NewQueue(runner Runner, size, workers int) *Queue {
	if runner == nil {
		panic("ingestion: backfill runner must not be nil")
	}
	if size <= 0 {
		size = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &Queue{
		runner:  runner,
		tasks:   make(chan *queueEntry, size),
		workers: workers,
		active:  make(map[string]*queueEntry),
		reports: make(map[string]*Report),
	}
}

// TriggerBackfill enqueues a backfill of guildID without waiting for it.
func (q *Queue) TriggerBackfill(guildID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.active[guildID]; exists {
		return ErrAlreadyRunning
	}

	entry := &queueEntry{guildID: guildID}
	select {
	case q.tasks <- entry:
		q.active[guildID] = entry
		slog.Info("[BackfillQueue] Backfill queued", "guild_id", guildID)
		return nil
	default:
		return ErrQueueFull
	}
}

// Cancel stops a queued or running backfill of guildID. It reports false when
// none is in flight.
func (q *Queue) Cancel(guildID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, exists := q.active[guildID]
	if !exists || entry.cancelled {
		return false
	}
	entry.cancelled = true
	if entry.cancel != nil {
		entry.cancel()
	} else {
		// Still queued: the worker skips the stale task, so the guild is
		// free to be queued again right away.
		delete(q.active, guildID)
	}
	slog.Info("[BackfillQueue] Backfill cancelled", "guild_id", guildID)
	return true
}

// Status reports whether guildID is in flight and its last finished report.
func (q *Queue) Status(guildID string) (running bool, last *Report) {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, running = q.active[guildID]
	return running, q.reports[guildID]
}

// Run consumes queued backfills until ctx is cancelled. In-flight backfills
// are cancelled with ctx and Run waits for them to return.
func (q *Queue) Run(ctx context.Context) {
	slog.Info("[BackfillQueue] Starting", "workers", q.workers, "capacity", cap(q.tasks))

	var wg sync.WaitGroup
	for i := 0; i < q.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case entry := <-q.tasks:
					q.run(ctx, entry)
				}
			}
		}()
	}
	wg.Wait()

	slog.Info("[BackfillQueue] Stopped")
}

func (q *Queue) run(ctx context.Context, entry *queueEntry) {
	guildID := entry.guildID

	q.mu.Lock()
	if q.active[guildID] != entry || entry.cancelled {
		q.mu.Unlock()
		slog.Info("[BackfillQueue] Skipping cancelled backfill", "guild_id", guildID)
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	entry.cancel = cancel
	q.mu.Unlock()

	defer func() {
		cancel()
		q.mu.Lock()
		delete(q.active, guildID)
		q.mu.Unlock()
	}()

	report, err := q.runner.Backfill(runCtx, guildID)
	if err != nil {
		slog.Error("[BackfillQueue] Backfill failed", "guild_id", guildID, "error", err)
		return
	}

	q.mu.Lock()
	q.reports[guildID] = report
	q.mu.Unlock()
}

// TriggerOnGuildAvailable enqueues a backfill whenever a guild becomes
// available on the gateway. The returned func removes the handler.
func (q *Queue) TriggerOnGuildAvailable(source platform.EventSource) (remove func()) {
	return source.OnGuildAvailable(func(g platform.Guild) {
		if err := q.TriggerBackfill(g.ID); err != nil {
			slog.Warn("[BackfillQueue] Guild available, backfill not queued",
				"guild_id", g.ID,
				"guild_name", g.Name,
				"reason", err)
		}
	})
}
