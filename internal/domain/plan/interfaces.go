package plan

import (
	"context"

	"github.com/rgeller/seminargrid/internal/domain/grid"
)

// ConfigProvider supplies the active grid configuration. The placement
// engine never holds its own copy; every operation reads the current one.
type ConfigProvider interface {
	Current() grid.Config
}

// PlanRepository persists full plan snapshots.
type PlanRepository interface {
	Save(ctx context.Context, p *Plan) error
	Load(ctx context.Context) (*Plan, error)
}

// DetailSource resolves a source reference to the descriptive details of
// the catalog entry an item was instantiated from. Looked-up values are
// merged into the item's own details; the core never keeps a live
// reference to the catalog entry.
type DetailSource interface {
	Lookup(ctx context.Context, sourceRef string) (Details, bool)
}

// MetaRepository persists the plan's header metadata.
type MetaRepository interface {
	SaveMeta(ctx context.Context, m Meta) error
	LoadMeta(ctx context.Context) (Meta, error)
}
