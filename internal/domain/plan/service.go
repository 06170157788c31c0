package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rgeller/seminargrid/internal/repository"
)

// Service is the single mutation surface for the plan. Every operation
// validates against the active grid configuration first and commits only
// on success; a rejected operation leaves the plan untouched. Successful
// mutations persist once; a failed save is logged and never rolls back
// the in-memory change.
type Service struct {
	plan   *Plan
	config ConfigProvider
	repo   PlanRepository
	source DetailSource
	logger *slog.Logger
}

// NewService creates a placement service with an empty plan for the
// currently configured days.
func NewService(config ConfigProvider, repo PlanRepository, source DetailSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		plan:   NewPlan(config.Current().Days),
		config: config,
		repo:   repo,
		source: source,
		logger: logger,
	}
}

// Load restores the persisted plan and normalizes every item against the
// active configuration. Normalization is not collision-aware: items that
// already overlapped, or that a shrunken grid forces together, stay
// overlapping rather than being dropped.
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("loading plan: %w", err)
	}
	s.plan = NormalizePlan(stored, s.config.Current())
	return nil
}

// AddRequest describes an interactive placement.
type AddRequest struct {
	Day            string
	RawStart       int
	RawDuration    int
	Kind           ItemKind
	Title          string
	SourceRef      string
	Details        Details
	RenderFragment string
}

// Add places a new item. The raw start and duration are snapped to the
// grid; a snapped range that does not fit the day window is rejected,
// never truncated.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Item, error) {
	cfg := s.config.Current()
	if !cfg.HasDay(req.Day) {
		return nil, ErrInvalidDay
	}
	kind := req.Kind
	if kind == "" {
		kind = KindMethod
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	start := cfg.SnapStart(req.RawStart)
	duration := cfg.SnapDuration(req.RawDuration)
	end := start + duration
	if !cfg.WithinBounds(start, end) {
		return nil, ErrOutOfBounds
	}

	title := req.Title
	if title == "" && kind == KindBreak {
		title = BreakTitle
	}

	details := req.Details
	if kind == KindMethod && req.SourceRef != "" && s.source != nil {
		if looked, ok := s.source.Lookup(ctx, req.SourceRef); ok {
			details = details.Merge(looked)
		}
	}

	item := Item{
		UID:            uuid.NewString(),
		Kind:           kind,
		Title:          title,
		StartMinutes:   start,
		EndMinutes:     end,
		SourceRef:      req.SourceRef,
		Details:        details,
		RenderFragment: req.RenderFragment,
	}

	if HasCollision(s.plan.Days[req.Day], item) {
		return nil, ErrCollision
	}

	s.plan.Days[req.Day] = append(s.plan.Days[req.Day], item)
	s.Persist(ctx)
	return &item, nil
}

// MoveRequest relocates an existing item, preserving its duration.
type MoveRequest struct {
	UID         string
	SourceDay   string
	TargetDay   string
	RawNewStart int
}

// Move relocates an item to a new day and start. The moving item is
// excluded from the target collision check, so a same-day move into its
// own freed slot succeeds.
func (s *Service) Move(ctx context.Context, req MoveRequest) (*Item, error) {
	cfg := s.config.Current()
	if !cfg.HasDay(req.SourceDay) || !cfg.HasDay(req.TargetDay) {
		return nil, ErrInvalidDay
	}

	idx, ok := s.plan.findItem(req.SourceDay, req.UID)
	if !ok {
		return nil, ErrItemNotFound
	}
	moving := s.plan.Days[req.SourceDay][idx]

	duration := moving.DurationMinutes()
	start := cfg.SnapStart(req.RawNewStart)
	end := start + duration
	if !cfg.WithinBounds(start, end) {
		return nil, ErrOutOfBounds
	}

	moved := moving
	moved.StartMinutes = start
	moved.EndMinutes = end
	if hasCollisionExcluding(s.plan.Days[req.TargetDay], moved, req.UID) {
		return nil, ErrCollision
	}

	source := s.plan.Days[req.SourceDay]
	s.plan.Days[req.SourceDay] = append(source[:idx:idx], source[idx+1:]...)
	s.plan.Days[req.TargetDay] = append(s.plan.Days[req.TargetDay], moved)
	s.Persist(ctx)
	return &moved, nil
}

// ResizeRequest grows or shrinks an item by a signed number of minutes.
// The delta is aligned to the base slot; the reference UI only ever
// sends one slot per gesture.
type ResizeRequest struct {
	UID          string
	Day          string
	DeltaMinutes int
}

// Resize changes an item's duration by adjusting its end. Break items
// keep their fixed duration and reject resizing.
func (s *Service) Resize(ctx context.Context, req ResizeRequest) (*Item, error) {
	cfg := s.config.Current()
	if !cfg.HasDay(req.Day) {
		return nil, ErrInvalidDay
	}

	idx, ok := s.plan.findItem(req.Day, req.UID)
	if !ok {
		return nil, ErrItemNotFound
	}
	current := s.plan.Days[req.Day][idx]
	if current.Kind == KindBreak {
		return nil, ErrBreakNotResizable
	}

	delta := (req.DeltaMinutes / cfg.BaseSlotMinutes) * cfg.BaseSlotMinutes
	duration := current.DurationMinutes() + delta
	if duration < cfg.BaseSlotMinutes {
		return nil, ErrMinimumDuration
	}

	resized := current
	resized.EndMinutes = current.StartMinutes + duration
	if !cfg.WithinBounds(resized.StartMinutes, resized.EndMinutes) {
		return nil, ErrOutOfBounds
	}
	if hasCollisionExcluding(s.plan.Days[req.Day], resized, req.UID) {
		return nil, ErrCollision
	}

	s.plan.Days[req.Day][idx] = resized
	s.Persist(ctx)
	return &resized, nil
}

// Delete removes an item unconditionally. Callers are expected to have
// confirmed with the user; there is no undo.
func (s *Service) Delete(ctx context.Context, day, uid string) error {
	cfg := s.config.Current()
	if !cfg.HasDay(day) {
		return ErrInvalidDay
	}
	idx, ok := s.plan.findItem(day, uid)
	if !ok {
		return ErrItemNotFound
	}
	items := s.plan.Days[day]
	s.plan.Days[day] = append(items[:idx:idx], items[idx+1:]...)
	s.Persist(ctx)
	return nil
}

// Clear replaces the plan with an empty one for the configured days.
func (s *Service) Clear(ctx context.Context) {
	s.plan = NewPlan(s.config.Current().Days)
	s.Persist(ctx)
}

// Items returns a day's items ordered by start time.
func (s *Service) Items(day string) ([]Item, error) {
	if !s.config.Current().HasDay(day) {
		return nil, ErrInvalidDay
	}
	return s.plan.ItemsByTime(day), nil
}

// DayMinutes sums the scheduled minutes of a day.
func (s *Service) DayMinutes(day string) (int, error) {
	if !s.config.Current().HasDay(day) {
		return 0, ErrInvalidDay
	}
	return s.plan.DayMinutes(day), nil
}

// Snapshot returns a deep copy of the whole plan.
func (s *Service) Snapshot() *Plan {
	return s.plan.Clone()
}

// ReshapeDays conforms the plan's day set to the given one. Items of
// removed days are discarded; new days start empty.
func (s *Service) ReshapeDays(ctx context.Context, days []string) {
	next := make(map[string][]Item, len(days))
	for _, day := range days {
		if items, ok := s.plan.Days[day]; ok {
			next[day] = items
		} else {
			next[day] = []Item{}
		}
	}
	s.plan.Days = next
}

// MigrateItems repairs every item so it satisfies the active
// configuration's invariants.
func (s *Service) MigrateItems(ctx context.Context) {
	s.plan = NormalizePlan(s.plan, s.config.Current())
}

// SeedBreak inserts a break item from a break rule, snapping its times
// to the grid. Collisions and out-of-window rules are skipped silently.
func (s *Service) SeedBreak(ctx context.Context, day string, startMinutes, durationMinutes int) bool {
	cfg := s.config.Current()
	if !cfg.HasDay(day) {
		return false
	}
	start := cfg.SnapStart(startMinutes)
	end := start + cfg.SnapDuration(durationMinutes)
	if !cfg.WithinBounds(start, end) {
		return false
	}
	item := Item{
		UID:          uuid.NewString(),
		Kind:         KindBreak,
		Title:        BreakTitle,
		StartMinutes: start,
		EndMinutes:   end,
	}
	if HasCollision(s.plan.Days[day], item) {
		return false
	}
	s.plan.Days[day] = append(s.plan.Days[day], item)
	return true
}

// Persist writes the current plan. Save failures degrade to a warning;
// the in-memory mutation that triggered the save stands.
func (s *Service) Persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.plan); err != nil {
		s.logger.Warn("saving plan", "error", err)
	}
}
