package grid

// The snapping primitives below are the only way other components may
// turn raw time and duration values into grid-aligned ones. Both are
// pure functions of the receiver configuration.

// SnapStart clamps raw to the day window and floors it to the nearest
// slot boundary measured from DayStart.
func (c Config) SnapStart(raw int) int {
	clamped := raw
	if clamped < c.DayStart {
		clamped = c.DayStart
	}
	if clamped > c.DayEnd {
		clamped = c.DayEnd
	}
	offset := clamped - c.DayStart
	return c.DayStart + (offset/c.BaseSlotMinutes)*c.BaseSlotMinutes
}

// SnapDuration rounds raw up to the nearest slot multiple. Non-positive
// input yields one base slot; a duration never snaps to zero.
func (c Config) SnapDuration(raw int) int {
	if raw <= 0 {
		return c.BaseSlotMinutes
	}
	if raw < c.BaseSlotMinutes {
		return c.BaseSlotMinutes
	}
	return ((raw + c.BaseSlotMinutes - 1) / c.BaseSlotMinutes) * c.BaseSlotMinutes
}

// WithinBounds reports whether [start, end] lies inside the day window.
func (c Config) WithinBounds(start, end int) bool {
	return start >= c.DayStart && end <= c.DayEnd
}
