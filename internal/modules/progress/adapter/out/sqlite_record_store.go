package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	progressout "timearena/internal/modules/progress/port/out"
	"timearena/internal/platform/clock"
	apperrors "timearena/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteRecordStore keeps the record blob as one row of a key-value table.
type SQLiteRecordStore struct {
	db    *sql.DB
	key   string
	clock clock.Clock
}

func NewSQLiteRecordStore(dbPath, key string, clock clock.Clock) (*SQLiteRecordStore, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: record key is required", apperrors.ErrInvalidInput)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteRecordStore{db: db, key: key, clock: clock}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

var _ progressout.RecordStore = (*SQLiteRecordStore)(nil)

func (s *SQLiteRecordStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) Load(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLiteRecordStore) Save(ctx context.Context, raw []byte) error {
	const stmt = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, stmt, s.key, string(raw), s.clock.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}
