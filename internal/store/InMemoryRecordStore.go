package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

var inMemLogger = logging.NewLogger("InMem RecordStore")

// InMemoryRecordStore is the fallback when redis is unavailable. Expiry is
// checked lazily on read, mirroring the TTL the redis store applies.
type InMemoryRecordStore struct {
	recordMutex *sync.RWMutex
	recordMap   map[string]docModel.GenerationRecord
	ttl         time.Duration
}

func InitInMemoryRecordStore(ttl time.Duration) *InMemoryRecordStore {
	return &InMemoryRecordStore{
		recordMutex: new(sync.RWMutex),
		recordMap:   make(map[string]docModel.GenerationRecord),
		ttl:         ttl,
	}
}

func (store *InMemoryRecordStore) SaveRecord(ctx context.Context, rec docModel.GenerationRecord) error {
	store.recordMutex.Lock()
	defer store.recordMutex.Unlock()
	store.recordMap[rec.ID] = rec
	inMemLogger.Debug("Saved record to store", "recordId", rec.ID)
	return nil
}

func (store *InMemoryRecordStore) GetRecord(ctx context.Context, id string) (docModel.GenerationRecord, bool) {
	store.recordMutex.RLock()
	rec, found := store.recordMap[id]
	store.recordMutex.RUnlock()

	if !found {
		return rec, false
	}
	if store.ttl > 0 && time.Since(rec.CreatedAt) > store.ttl {
		store.DeleteRecord(ctx, id)
		return docModel.GenerationRecord{}, false
	}
	return rec, true
}

func (store *InMemoryRecordStore) ListRecords(ctx context.Context) ([]docModel.GenerationRecord, error) {
	store.recordMutex.RLock()
	records := make([]docModel.GenerationRecord, 0, len(store.recordMap))
	var expired []string
	for id, rec := range store.recordMap {
		if store.ttl > 0 && time.Since(rec.CreatedAt) > store.ttl {
			expired = append(expired, id)
			continue
		}
		records = append(records, rec)
	}
	store.recordMutex.RUnlock()

	for _, id := range expired {
		store.DeleteRecord(ctx, id)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (store *InMemoryRecordStore) DeleteRecord(ctx context.Context, id string) {
	store.recordMutex.Lock()
	defer store.recordMutex.Unlock()
	delete(store.recordMap, id)
}
