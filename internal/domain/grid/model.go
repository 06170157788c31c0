package grid

// BreakDaysAll marks a break rule that applies to every configured day.
const BreakDaysAll = "all"

// BreakRule seeds a recurring break when a configuration is applied.
type BreakRule struct {
	Days            []string `json:"days" yaml:"days"`
	StartMinutes    int      `json:"startMinutes" yaml:"startMinutes"`
	DurationMinutes int      `json:"durationMinutes" yaml:"durationMinutes"`
}

// Config is the authoritative definition of the schedulable timeline:
// which day columns exist, the daily time window, the alignment unit,
// and the break rules seeded on apply. Times are minutes from midnight.
type Config struct {
	Days            []string    `json:"days" yaml:"days"`
	DayStart        int         `json:"dayStart" yaml:"dayStart"`
	DayEnd          int         `json:"dayEnd" yaml:"dayEnd"`
	BaseSlotMinutes int         `json:"baseSlotMinutes" yaml:"baseSlotMinutes"`
	BreakRules      []BreakRule `json:"breakRules,omitempty" yaml:"breakRules,omitempty"`
	Zoom            ZoomID      `json:"zoom,omitempty" yaml:"zoom,omitempty"`
}

// Validate checks the structural invariants of a configuration.
func (c Config) Validate() error {
	if len(c.Days) == 0 {
		return ErrInvalidConfig
	}
	seen := make(map[string]bool, len(c.Days))
	for _, day := range c.Days {
		if day == "" || day == BreakDaysAll || seen[day] {
			return ErrInvalidConfig
		}
		seen[day] = true
	}
	if c.DayStart >= c.DayEnd {
		return ErrInvalidConfig
	}
	if c.BaseSlotMinutes <= 0 {
		return ErrInvalidConfig
	}
	if c.Zoom != "" {
		if _, ok := ZoomByID(c.Zoom); !ok {
			return ErrInvalidConfig
		}
	}
	for _, rule := range c.BreakRules {
		if rule.DurationMinutes <= 0 {
			return ErrInvalidConfig
		}
		for _, day := range rule.Days {
			if day != BreakDaysAll && !seen[day] {
				return ErrInvalidConfig
			}
		}
	}
	return nil
}

// HasDay reports whether day is part of the configured day set.
func (c Config) HasDay(day string) bool {
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ExpandBreakDays resolves a break rule's day list, expanding the
// "all" sentinel to the full configured day set.
func (c Config) ExpandBreakDays(rule BreakRule) []string {
	for _, d := range rule.Days {
		if d == BreakDaysAll {
			return append([]string(nil), c.Days...)
		}
	}
	days := make([]string, 0, len(rule.Days))
	for _, d := range rule.Days {
		if c.HasDay(d) {
			days = append(days, d)
		}
	}
	return days
}
