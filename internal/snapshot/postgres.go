package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hedef100/academia-core/internal/models"
)

// PostgresStore keeps the snapshot as a single JSONB row keyed by the
// schema key.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an established connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the snapshot table when missing.
func (s *PostgresStore) Init(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS app_snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create snapshot table: %w", err)
	}
	return nil
}

// Load fetches and decodes the stored snapshot row.
func (s *PostgresStore) Load(ctx context.Context) (*models.AppState, error) {
	var data []byte
	err := s.db.QueryRowxContext(ctx, `SELECT data FROM app_snapshots WHERE key = $1`, SchemaKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return decode(data)
}

// Save upserts the snapshot row.
func (s *PostgresStore) Save(ctx context.Context, state *models.AppState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO app_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, SchemaKey, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
