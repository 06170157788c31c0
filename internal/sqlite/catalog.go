package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/rgeller/seminargrid/internal/repository"
)

// CatalogRepository implements catalog.EntryRepository for SQLite
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Put inserts or replaces a catalog entry
func (r *CatalogRepository) Put(ctx context.Context, entry *catalog.Entry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("failed to encode entry details: %w", err)
	}

	query := `
		INSERT INTO catalog_entries (id, title, duration_min, details, render_fragment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			duration_min = excluded.duration_min,
			details = excluded.details,
			render_fragment = excluded.render_fragment
	`

	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Title,
		entry.DurationMinutes,
		string(details),
		entry.RenderFragment,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to put catalog entry: %w", err)
	}

	return nil
}

// Get retrieves a catalog entry by ID
func (r *CatalogRepository) Get(ctx context.Context, id string) (*catalog.Entry, error) {
	query := `
		SELECT id, title, duration_min, details, render_fragment, created_at
		FROM catalog_entries
		WHERE id = ?
	`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}

	return entry, nil
}

// List returns all catalog entries ordered by title
func (r *CatalogRepository) List(ctx context.Context) ([]catalog.Entry, error) {
	query := `
		SELECT id, title, duration_min, details, render_fragment, created_at
		FROM catalog_entries
		ORDER BY title ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*catalog.Entry, error) {
	var entry catalog.Entry
	var details string

	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.DurationMinutes,
		&details,
		&entry.RenderFragment,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	var d plan.Details
	if err := json.Unmarshal([]byte(details), &d); err != nil {
		return nil, fmt.Errorf("failed to decode entry details: %w", err)
	}
	entry.Details = d

	return &entry, nil
}
