package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/rgeller/seminargrid/internal/repository"
)

// MetaRepository implements plan.MetaRepository for SQLite
type MetaRepository struct {
	db *DB
}

// NewMetaRepository creates a new MetaRepository
func NewMetaRepository(db *DB) *MetaRepository {
	return &MetaRepository{db: db}
}

// SaveMeta stores the seminar metadata
func (r *MetaRepository) SaveMeta(ctx context.Context, meta plan.Meta) error {
	query := `
		INSERT INTO plan_meta (id, title, date, number, contact)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			date = excluded.date,
			number = excluded.number,
			contact = excluded.contact
	`

	_, err := r.db.ExecContext(ctx, query, meta.Title, meta.Date, meta.Number, meta.Contact)
	if err != nil {
		return fmt.Errorf("failed to save plan meta: %w", err)
	}

	return nil
}

// LoadMeta reads the seminar metadata
func (r *MetaRepository) LoadMeta(ctx context.Context) (plan.Meta, error) {
	query := `SELECT title, date, number, contact FROM plan_meta WHERE id = 1`

	var meta plan.Meta
	err := r.db.QueryRowContext(ctx, query).Scan(&meta.Title, &meta.Date, &meta.Number, &meta.Contact)
	if err == sql.ErrNoRows {
		return plan.Meta{}, repository.ErrNotFound
	}
	if err != nil {
		return plan.Meta{}, fmt.Errorf("failed to load plan meta: %w", err)
	}

	return meta, nil
}
