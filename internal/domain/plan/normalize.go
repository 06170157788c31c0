package plan

import (
	"github.com/google/uuid"
	"github.com/rgeller/seminargrid/internal/domain/grid"
)

// NormalizeItem repairs a previously stored item so it satisfies cfg's
// invariants: snapped start, slot-multiple duration of at least one base
// slot, and both ends inside the day window. An item whose snapped end
// overflows the window is shifted backward whole rather than truncated.
func NormalizeItem(it Item, cfg grid.Config) Item {
	if it.UID == "" {
		it.UID = uuid.NewString()
	}
	if !it.Kind.Valid() {
		it.Kind = KindMethod
	}

	start := cfg.SnapStart(it.StartMinutes)
	duration := cfg.SnapDuration(it.EndMinutes - it.StartMinutes)
	end := start + duration
	if end > cfg.DayEnd {
		end = cfg.DayEnd
		start = cfg.SnapStart(end - duration)
	}

	ensured := start + cfg.BaseSlotMinutes
	if end > ensured {
		ensured = end
	}
	if ensured > cfg.DayEnd {
		ensured = cfg.DayEnd
		start = cfg.SnapStart(ensured - cfg.BaseSlotMinutes)
	}

	it.StartMinutes = start
	it.EndMinutes = ensured
	return it
}

// NormalizePlan repairs every item of every configured day. Days outside
// cfg are dropped; configured days missing from p start empty. The
// result can contain overlapping items: normalization never deletes
// user data to resolve a collision the repair itself produced.
func NormalizePlan(p *Plan, cfg grid.Config) *Plan {
	next := NewPlan(cfg.Days)
	if p == nil {
		return next
	}
	for _, day := range cfg.Days {
		for _, it := range p.Days[day] {
			next.Days[day] = append(next.Days[day], NormalizeItem(it, cfg))
		}
	}
	return next
}
