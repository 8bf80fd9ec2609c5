// Package store persists the two outputs of a generation run: the binary
// .docx artifact and its metadata record. Artifacts live on disk (or in an
// S3-compatible bucket) under a retention window; records live in redis with
// a matching TTL.
package store

import (
	"context"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// ArtifactStore holds generated documents for download until they expire.
type ArtifactStore interface {
	Save(ctx context.Context, name string, data []byte) error
	// Open returns the artifact bytes or an error wrapping ErrNotFound when
	// the artifact is absent or already swept.
	Open(ctx context.Context, name string) ([]byte, error)
	// Sweep deletes artifacts last modified before cutoff and reports how
	// many were removed. An artifact vanishing mid-sweep is not an error.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

// RecordStore keeps generation metadata keyed by record ID.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec docModel.GenerationRecord) error
	GetRecord(ctx context.Context, id string) (docModel.GenerationRecord, bool)
	// ListRecords returns all live records, newest first.
	ListRecords(ctx context.Context) ([]docModel.GenerationRecord, error)
	DeleteRecord(ctx context.Context, id string)
}
