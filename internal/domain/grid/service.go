package grid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rgeller/seminargrid/internal/repository"
)

// Service owns the active configuration. Apply is the only mutator for
// the grid shape; SetZoom only changes the display preset.
type Service struct {
	cfg    Config
	repo   ConfigRepository
	plan   PlanConformer
	logger *slog.Logger
}

// NewService creates a configuration service starting from DefaultConfig.
func NewService(repo ConfigRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    DefaultConfig,
		repo:   repo,
		logger: logger,
	}
}

// BindPlan attaches the placement engine driven by configuration changes.
// Wired once at startup; kept out of the constructor to break the
// construction cycle with the plan service, which reads back the active
// configuration from here.
func (s *Service) BindPlan(plan PlanConformer) {
	s.plan = plan
}

// Load restores the persisted configuration, if any.
func (s *Service) Load(ctx context.Context) error {
	cfg, err := s.repo.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("loading grid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("persisted grid configuration invalid, keeping default", "error", err)
		return nil
	}
	if cfg.Zoom == "" {
		cfg.Zoom = DefaultZoom
	}
	s.cfg = cfg
	return nil
}

// Current returns the active configuration.
func (s *Service) Current() Config {
	return s.cfg
}

// Apply replaces the active configuration, conforms the plan's day set
// to the new one, migrates surviving items, and seeds break items from
// the break rules. Seeding uses normal collision-safe insertion: a
// break colliding with existing content is skipped, never overwrites.
func (s *Service) Apply(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Zoom == "" {
		cfg.Zoom = s.cfg.Zoom
	}
	s.cfg = cfg

	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		s.logger.Warn("saving grid configuration", "error", err)
	}

	if s.plan == nil {
		return nil
	}

	s.plan.ReshapeDays(ctx, cfg.Days)
	s.plan.MigrateItems(ctx)
	for _, rule := range cfg.BreakRules {
		for _, day := range cfg.ExpandBreakDays(rule) {
			if !s.plan.SeedBreak(ctx, day, rule.StartMinutes, rule.DurationMinutes) {
				s.logger.Debug("break rule skipped", "day", day, "start", rule.StartMinutes)
			}
		}
	}
	s.plan.Persist(ctx)
	return nil
}

// ApplyPreset applies one of the built-in configurations.
func (s *Service) ApplyPreset(ctx context.Context, key string) error {
	preset, ok := PresetByKey(key)
	if !ok {
		return ErrUnknownPreset
	}
	return s.Apply(ctx, preset.Config)
}

// SetZoom switches the display preset. Zoom never affects validation,
// so no plan migration happens here.
func (s *Service) SetZoom(ctx context.Context, id ZoomID) (ZoomLevel, error) {
	level, ok := ZoomByID(id)
	if !ok {
		return ZoomLevel{}, ErrUnknownZoom
	}
	s.cfg.Zoom = id
	if err := s.repo.SaveConfig(ctx, s.cfg); err != nil {
		s.logger.Warn("saving zoom preference", "error", err)
	}
	return level, nil
}

// Zoom returns the active display preset.
func (s *Service) Zoom() ZoomLevel {
	if level, ok := ZoomByID(s.cfg.Zoom); ok {
		return level
	}
	level, _ := ZoomByID(DefaultZoom)
	return level
}
