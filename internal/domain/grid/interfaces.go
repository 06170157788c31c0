package grid

import "context"

// ConfigRepository persists the active grid configuration.
type ConfigRepository interface {
	SaveConfig(ctx context.Context, cfg Config) error
	LoadConfig(ctx context.Context) (Config, error)
}

// PlanConformer is the placement engine surface the configuration model
// drives when a new configuration is applied. Mutations accumulate in
// memory; Persist writes the result once.
type PlanConformer interface {
	ReshapeDays(ctx context.Context, days []string)
	MigrateItems(ctx context.Context)
	SeedBreak(ctx context.Context, day string, startMinutes, durationMinutes int) bool
	Persist(ctx context.Context)
}
