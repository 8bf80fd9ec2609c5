package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

// LocalArtifactStore keeps artifacts as plain files in one directory. File
// mtime doubles as the retention clock.
type LocalArtifactStore struct {
	dir    string
	logger *logging.Logger
}

func NewLocalArtifactStore(dir string) *LocalArtifactStore {
	return &LocalArtifactStore{
		dir:    dir,
		logger: logging.NewLogger("ArtifactStore"),
	}
}

// safePath confines a client-supplied name to the store directory.
func (s *LocalArtifactStore) safePath(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." {
		return "", fmt.Errorf("%w: invalid artifact name %q", docModel.ErrRequest, name)
	}
	return filepath.Join(s.dir, base), nil
}

func (s *LocalArtifactStore) Save(ctx context.Context, name string, data []byte) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		s.logger.Error("Writing artifact failed", "name", name, "error", err)
		return err
	}
	return nil
}

func (s *LocalArtifactStore) Open(ctx context.Context, name string) ([]byte, error) {
	path, err := s.safePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: artifact %s", docModel.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *LocalArtifactStore) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		err = os.Remove(filepath.Join(s.dir, entry.Name()))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("Removing expired artifact failed", "name", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("Swept expired artifacts", "removed", removed)
	}
	return removed, nil
}
