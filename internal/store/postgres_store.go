package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// PostgresStore keeps the state document in a single keyed row, so the
// engine's load-once / save-whole contract maps onto one SELECT and one
// upsert. Used when several read-only dashboards share one database.
type PostgresStore struct {
	db  *sql.DB
	key string
}

func NewPostgresStore(db *sql.DB, key string) *PostgresStore {
	return &PostgresStore{db: db, key: key}
}

func (p *PostgresStore) Load(ctx context.Context) (*State, error) {
	query := `SELECT value FROM pos_state WHERE key = $1`

	var data []byte
	err := p.db.QueryRowContext(ctx, query, p.key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse stored state: %w", err)
	}

	return &state, nil
}

func (p *PostgresStore) Save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	query := `
		INSERT INTO pos_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3
	`

	if _, err := p.db.ExecContext(ctx, query, p.key, data, time.Now()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}
