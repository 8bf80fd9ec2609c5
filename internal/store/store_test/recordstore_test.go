package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/data/redisStore"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRecordStore(t *testing.T, ttl time.Duration) (*store.RedisRecordStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return store.TestRecordStore(redisStore.NewTestStore(client), ttl), mr
}

func sampleRecord(id string) docModel.GenerationRecord {
	return docModel.GenerationRecord{
		ID:       id,
		FileName: "Alice_Johnson_NDA_EN_" + id + ".docx",
		DocType:  docModel.DocTypeNDA,
		Language: docModel.LanguageEnglish,
		ExtractedFields: map[docModel.FieldName]string{
			docModel.FieldPartyName: "Alice Johnson",
			docModel.FieldCompany:   "TechNova",
		},
		SectionsGenerated: 10,
		CreatedAt:         time.Now(),
	}
}

func TestRedisRecordStore_Lifecycle(t *testing.T) {
	recordStore, mr := newTestRecordStore(t, time.Hour)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	rec := sampleRecord("rec_abc_123")

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := recordStore.SaveRecord(ctx, rec); err != nil {
			t.Fatalf("SaveRecord failed: %v", err)
		}

		got, found := recordStore.GetRecord(ctx, rec.ID)
		if !found {
			t.Fatal("Record was saved but not found in Redis")
		}
		if got.FileName != rec.FileName {
			t.Errorf("Data mismatch! Got %s, want %s", got.FileName, rec.FileName)
		}
		if got.ExtractedFields[docModel.FieldPartyName] != "Alice Johnson" {
			t.Errorf("extracted fields did not survive the roundtrip: %+v", got.ExtractedFields)
		}
	})

	t.Run("Get Non-Existent Record", func(t *testing.T) {
		if _, found := recordStore.GetRecord(ctx, "ghost-id"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("TTL Expiry", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)
		if _, found := recordStore.GetRecord(ctx, rec.ID); found {
			t.Error("Record should have expired with the retention window")
		}
	})
}

func TestRedisRecordStore_Delete(t *testing.T) {
	recordStore, mr := newTestRecordStore(t, time.Hour)
	ctx := context.Background()
	rec := sampleRecord("rec_del")

	if err := recordStore.SaveRecord(ctx, rec); err != nil {
		t.Fatal(err)
	}
	recordStore.DeleteRecord(ctx, rec.ID)
	if mr.Exists(rec.ID) {
		t.Error("Record still exists in Redis after DeleteRecord call")
	}
}

func TestRedisRecordStore_List(t *testing.T) {
	recordStore, _ := newTestRecordStore(t, time.Hour)
	ctx := context.Background()

	older := sampleRecord("rec_old")
	older.CreatedAt = time.Now().Add(-30 * time.Minute)
	newer := sampleRecord("rec_new")

	if err := recordStore.SaveRecord(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := recordStore.SaveRecord(ctx, newer); err != nil {
		t.Fatal(err)
	}

	records, err := recordStore.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ID != "rec_new" || records[1].ID != "rec_old" {
		t.Errorf("records out of order: %s, %s (want newest first)", records[0].ID, records[1].ID)
	}
}

func TestInMemoryRecordStore_ListSkipsExpired(t *testing.T) {
	s := store.InitInMemoryRecordStore(time.Hour)
	ctx := context.Background()

	stale := sampleRecord("rec_stale")
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)
	_ = s.SaveRecord(ctx, stale)
	_ = s.SaveRecord(ctx, sampleRecord("rec_live"))

	records, err := s.ListRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != "rec_live" {
		t.Errorf("records = %+v, want only the live record", records)
	}
}

func TestInMemoryRecordStore_Expiry(t *testing.T) {
	s := store.InitInMemoryRecordStore(time.Hour)
	ctx := context.Background()

	rec := sampleRecord("rec_mem")
	rec.CreatedAt = time.Now().Add(-2 * time.Hour)
	if err := s.SaveRecord(ctx, rec); err != nil {
		t.Fatal(err)
	}

	if _, found := s.GetRecord(ctx, rec.ID); found {
		t.Error("stale record must be treated as expired")
	}

	fresh := sampleRecord("rec_fresh")
	_ = s.SaveRecord(ctx, fresh)
	if _, found := s.GetRecord(ctx, fresh.ID); !found {
		t.Error("fresh record must be readable")
	}
}

func TestInMemoryRecordStore_Race(t *testing.T) {
	s := store.InitInMemoryRecordStore(time.Hour)
	ctx := context.Background()
	rec := sampleRecord("race-rec")

	const workers = 50
	for i := 0; i < workers; i++ {
		go func() {
			_ = s.SaveRecord(ctx, rec)
			_, _ = s.GetRecord(ctx, "race-rec")
		}()
	}
}
