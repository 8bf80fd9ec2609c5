package store

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/data/redisStore"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

// RedisRecordStore persists generation records with a TTL equal to the
// artifact retention window, so a record dies with its artifact.
type RedisRecordStore struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logging.Logger
}

// GetRedisRecordStore returns a redis-backed record store, or nil when redis
// is unreachable. main decides whether to fall back to the in-memory store.
func GetRedisRecordStore(ctx context.Context, ttl time.Duration) *RedisRecordStore {
	rs := redisStore.GetRedisStore(ctx, config.RedisRecordStore)
	if rs == nil {
		return nil
	}
	return &RedisRecordStore{
		store:  rs,
		ttl:    ttl,
		logger: logging.NewLogger("RecordStore"),
	}
}

func (s *RedisRecordStore) SaveRecord(ctx context.Context, rec docModel.GenerationRecord) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "recordId", rec.ID)
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, rec.ID, data, s.ttl)
	if err == nil {
		log.Debug("Saved record to Redis")
	}
	return err
}

func (s *RedisRecordStore) GetRecord(ctx context.Context, id string) (docModel.GenerationRecord, bool) {
	var rec docModel.GenerationRecord
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "recordId", id)

	val, err := s.store.Get(ctx, id)
	if s.store.IsNil(err) {
		return rec, false
	} else if err != nil {
		log.Error("Reading record from Redis failed", "error", err)
		return rec, false
	}

	if err = json.Unmarshal([]byte(val), &rec); err != nil {
		log.Error("Record payload is corrupt", "error", err)
		return rec, false
	}
	return rec, true
}

// ListRecords scans the record keyspace and loads every live record. The
// record DB holds nothing but records, so the pattern is the whole keyspace.
func (s *RedisRecordStore) ListRecords(ctx context.Context) ([]docModel.GenerationRecord, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	keys, err := s.store.ScanKeys(ctx, "*")
	if err != nil {
		return nil, err
	}

	records := make([]docModel.GenerationRecord, 0, len(keys))
	for _, key := range keys {
		val, err := s.store.Get(ctx, key)
		if s.store.IsNil(err) {
			continue //expired between scan and read
		} else if err != nil {
			return nil, err
		}
		var rec docModel.GenerationRecord
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			log.Error("Record payload is corrupt, skipping", "recordId", key, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (s *RedisRecordStore) DeleteRecord(ctx context.Context, id string) {
	if err := s.store.Del(ctx, id); err != nil {
		s.logger.Error("Deleting record from Redis failed", "recordId", id, "error", err)
		return
	}
	s.logger.Debug("Record deleted from Redis", "recordId", id)
}

// TestRecordStore wires an externally constructed redis store, for miniredis
// backed tests.
func TestRecordStore(store *redisStore.Store, ttl time.Duration) *RedisRecordStore {
	return &RedisRecordStore{
		store:  store,
		ttl:    ttl,
		logger: logging.NewLogger("test redis"),
	}
}
