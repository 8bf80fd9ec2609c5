package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/store"
)

func TestLocalArtifactStore_SaveOpen(t *testing.T) {
	dir := t.TempDir()
	s := store.NewLocalArtifactStore(dir)
	ctx := context.Background()

	data := []byte("docx bytes")
	if err := s.Save(ctx, "Alice_NDA_EN_abc.docx", data); err != nil {
		t.Fatal(err)
	}

	got, err := s.Open(ctx, "Alice_NDA_EN_abc.docx")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestLocalArtifactStore_OpenMissing(t *testing.T) {
	s := store.NewLocalArtifactStore(t.TempDir())
	_, err := s.Open(context.Background(), "never_saved.docx")
	if !errors.Is(err, docModel.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLocalArtifactStore_RejectsTraversal(t *testing.T) {
	s := store.NewLocalArtifactStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"../escape.docx", "a/b.docx", "..", "."} {
		if err := s.Save(ctx, name, []byte("x")); !errors.Is(err, docModel.ErrRequest) {
			t.Errorf("Save(%q): err = %v, want ErrRequest", name, err)
		}
		if _, err := s.Open(ctx, name); !errors.Is(err, docModel.ErrRequest) {
			t.Errorf("Open(%q): err = %v, want ErrRequest", name, err)
		}
	}
}

func TestLocalArtifactStore_Sweep(t *testing.T) {
	dir := t.TempDir()
	s := store.NewLocalArtifactStore(dir)
	ctx := context.Background()

	if err := s.Save(ctx, "old.docx", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "fresh.docx", []byte("fresh")); err != nil {
		t.Fatal(err)
	}

	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old.docx"), stale, stale); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Sweep(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	if _, err := s.Open(ctx, "old.docx"); !errors.Is(err, docModel.ErrNotFound) {
		t.Error("expired artifact must be gone after sweep")
	}
	if _, err := s.Open(ctx, "fresh.docx"); err != nil {
		t.Errorf("fresh artifact must survive the sweep: %v", err)
	}
}
