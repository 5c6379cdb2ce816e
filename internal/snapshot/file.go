package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hedef100/academia-core/internal/models"
)

// FileStore keeps the snapshot as a JSON file under a base directory.
// This is the default backend and mirrors the single-document storage
// the tracker started with.
type FileStore struct {
	dir string
}

// NewFileStore ensures the directory exists and returns a handle.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads and decodes the snapshot file.
func (s *FileStore) Load(_ context.Context) (*models.AppState, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return decode(data)
}

// Save writes the snapshot atomically via a temp file rename so a
// crash mid-write never leaves a truncated document behind.
func (s *FileStore) Save(_ context.Context, state *models.AppState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, SchemaKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("close snapshot temp file: %w", err)
	}
	if err := os.Rename(name, s.path()); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Path exposes the snapshot file location.
func (s *FileStore) Path() string {
	return s.path()
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, SchemaKey+".json")
}
