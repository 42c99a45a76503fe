package metrics

import (
	"context"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
	"github.com/statsbot-lab/guild-stats/internal/core/storage"
)

// instrumentedStore counts successful writes and deletions.
type instrumentedStore struct {
	storage.RecordStore
	metrics *Metrics
}

// InstrumentStore wraps store so every successful Put and DeleteWhere is counted.
func InstrumentStore(store storage.RecordStore, m *Metrics) storage.RecordStore {
	if m == nil {
		return store
	}
	return &instrumentedStore{RecordStore: store, metrics: m}
}

func (s *instrumentedStore) Put(ctx context.Context, rec *record.Record) error {
	if err := s.RecordStore.Put(ctx, rec); err != nil {
		return err
	}
	s.metrics.RecordWritten(string(rec.Kind))
	return nil
}

func (s *instrumentedStore) DeleteWhere(ctx context.Context, kind record.Kind, filter storage.Filter) (int64, error) {
	n, err := s.RecordStore.DeleteWhere(ctx, kind, filter)
	s.metrics.RecordsDeleted(string(kind), n)
	return n, err
}
