package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/repository"
)

// GridRepository implements grid.ConfigRepository for SQLite
type GridRepository struct {
	db *DB
}

// NewGridRepository creates a new GridRepository
func NewGridRepository(db *DB) *GridRepository {
	return &GridRepository{db: db}
}

// SaveConfig stores the grid configuration as a single JSON row
func (r *GridRepository) SaveConfig(ctx context.Context, cfg grid.Config) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode grid config: %w", err)
	}

	query := `
		INSERT INTO grid_configs (id, doc, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, string(doc)); err != nil {
		return fmt.Errorf("failed to save grid config: %w", err)
	}

	return nil
}

// LoadConfig reads the stored grid configuration
func (r *GridRepository) LoadConfig(ctx context.Context) (grid.Config, error) {
	query := `SELECT doc FROM grid_configs WHERE id = 1`

	var doc string
	err := r.db.QueryRowContext(ctx, query).Scan(&doc)
	if err == sql.ErrNoRows {
		return grid.Config{}, repository.ErrNotFound
	}
	if err != nil {
		return grid.Config{}, fmt.Errorf("failed to load grid config: %w", err)
	}

	var cfg grid.Config
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		return grid.Config{}, fmt.Errorf("failed to decode grid config: %w", err)
	}

	return cfg, nil
}
