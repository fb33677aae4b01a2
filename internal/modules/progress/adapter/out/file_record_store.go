package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	progressout "timearena/internal/modules/progress/port/out"
	apperrors "timearena/internal/platform/errors"
)

// FileRecordStore keeps the record blob in a single JSON file.
type FileRecordStore struct {
	path string
}

func NewFileRecordStore(path string) progressout.RecordStore {
	return &FileRecordStore{path: path}
}

func (s *FileRecordStore) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read progress record: %w", err)
	}
	return payload, nil
}

// Save replaces the whole file through a rename so readers never observe a
// partial write.
func (s *FileRecordStore) Save(_ context.Context, raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write progress record: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace progress record: %w", err)
	}
	return nil
}
