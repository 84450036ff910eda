package implementation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"study-assistant-be/internal/constant"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/pkg/store"

	_ "modernc.org/sqlite"
)

// SnapshotRepositoryImpl keeps the whole serialized state in a single row of
// a local SQLite database, the flat key-value store the app persists to.
type SnapshotRepositoryImpl struct {
	db  *sql.DB
	key string
}

var _ contract.SnapshotRepository = &SnapshotRepositoryImpl{}

func NewSnapshotRepository(path string) (*SnapshotRepositoryImpl, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	return &SnapshotRepositoryImpl{db: db, key: constant.SnapshotStorageKey}, nil
}

func (r *SnapshotRepositoryImpl) Save(ctx context.Context, state *store.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		r.key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load returns nil without error when no snapshot has been written yet.
func (r *SnapshotRepositoryImpl) Load(ctx context.Context) (*store.State, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, r.key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state store.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

func (r *SnapshotRepositoryImpl) Close() error {
	return r.db.Close()
}
