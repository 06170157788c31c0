package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/rgeller/seminargrid/internal/repository"
)

// PlanRepository implements plan.PlanRepository for SQLite
type PlanRepository struct {
	db *DB
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Save writes the full plan as a single JSON document
func (r *PlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	doc, err := json.Marshal(p.Wire())
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	query := `
		INSERT INTO plan_documents (id, doc, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, string(doc)); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return nil
}

// Load reads the stored plan document
func (r *PlanRepository) Load(ctx context.Context) (*plan.Plan, error) {
	query := `SELECT doc FROM plan_documents WHERE id = 1`

	var doc string
	err := r.db.QueryRowContext(ctx, query).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var wire plan.WirePlan
	if err := json.Unmarshal([]byte(doc), &wire); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	return plan.FromWire(&wire), nil
}
