package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/mo"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
)

type recordID struct {
	kind record.Kind
	key  string
}

// Store is an in-memory implementation of storage.RecordStore.
// Useful for testing and development.
type Store struct {
	mu      sync.RWMutex
	records map[recordID]*record.Record
	nowFn   func() time.Time
}

var _ storage.RecordStore = (*Store)(nil)

// NewStore creates an empty in-memory record store.
func NewStore() *Store {
	return &Store{
		records: make(map[recordID]*record.Record),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Get(ctx context.Context, kind record.Kind, key string) (mo.Option[*record.Record], error) {
	if err := storage.ValidateKind(kind); err != nil {
		return mo.None[*record.Record](), err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[recordID{kind: kind, key: key}]
	if !exists {
		return mo.None[*record.Record](), nil
	}
	return mo.Some(clone(rec)), nil
}

func (s *Store) Put(ctx context.Context, rec *record.Record) error {
	if err := storage.ValidateKind(rec.Kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent external modification
	s.records[recordID{kind: rec.Kind, key: rec.Key}] = clone(rec)
	return nil
}

func (s *Store) DeleteWhere(ctx context.Context, kind record.Kind, filter storage.Filter) (int64, error) {
	if err := storage.ValidateKind(kind); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, rec := range s.records {
		if id.kind != kind || !filter.Matches(rec.Scope) {
			continue
		}
		delete(s.records, id)
		deleted++
	}

	slog.Info("[MemoryStore] Deleted records", "kind", kind, "filter", filter.String(), "deleted", deleted)
	return deleted, nil
}

func (s *Store) OldestTimestamp(ctx context.Context, kind record.Kind) (time.Time, error) {
	if err := storage.ValidateKind(kind); err != nil {
		return time.Time{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var oldest time.Time
	for id, rec := range s.records {
		if id.kind != kind || !rec.HasTimestamp() {
			continue
		}
		if oldest.IsZero() || rec.Timestamp.Before(oldest) {
			oldest = rec.Timestamp
		}
	}
	if oldest.IsZero() {
		return s.nowFn(), nil
	}
	return oldest, nil
}

func (s *Store) ChannelMessages(ctx context.Context, channelID string) ([]*record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*record.Record
	for id, rec := range s.records {
		if id.kind != record.KindMessage || rec.String(record.FieldChannel) != channelID {
			continue
		}
		result = append(result, clone(rec))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].Key < result[j].Key
	})
	return result, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored records of kind.
func (s *Store) Len(kind record.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for id := range s.records {
		if id.kind == kind {
			n++
		}
	}
	return n
}

func clone(rec *record.Record) *record.Record {
	c := *rec
	if rec.Fields != nil {
		c.Fields = make(map[string]interface{}, len(rec.Fields))
		for k, v := range rec.Fields {
			c.Fields[k] = v
		}
	}
	return &c
}
