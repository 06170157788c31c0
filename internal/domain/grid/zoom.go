package grid

// ZoomID identifies one of the fixed zoom presets.
type ZoomID string

const (
	ZoomFine   ZoomID = "fine"
	ZoomMedium ZoomID = "medium"
	ZoomCoarse ZoomID = "coarse"
)

// ZoomLevel is a purely presentational slot sizing preset. It controls
// how densely a grid is drawn and never participates in validation;
// the alignment unit stays Config.BaseSlotMinutes.
type ZoomLevel struct {
	ID              ZoomID `json:"id"`
	Label           string `json:"label"`
	SlotMinutes     int    `json:"slotMinutes"`
	SlotPx          int    `json:"slotPx"`
	LabelEverySlots int    `json:"labelEverySlots"`
	ShowMinor       bool   `json:"showMinor"`
}

// ZoomLevels lists the presets from finest to coarsest.
var ZoomLevels = []ZoomLevel{
	{ID: ZoomFine, Label: "5 Min", SlotMinutes: 5, SlotPx: 18, LabelEverySlots: 3, ShowMinor: true},
	{ID: ZoomMedium, Label: "15 Min", SlotMinutes: 15, SlotPx: 26, LabelEverySlots: 1, ShowMinor: true},
	{ID: ZoomCoarse, Label: "30 Min", SlotMinutes: 30, SlotPx: 30, LabelEverySlots: 2, ShowMinor: false},
}

// DefaultZoom is used when no zoom preference was persisted.
const DefaultZoom = ZoomCoarse

// ZoomByID looks up a zoom preset.
func ZoomByID(id ZoomID) (ZoomLevel, bool) {
	for _, level := range ZoomLevels {
		if level.ID == id {
			return level, true
		}
	}
	return ZoomLevel{}, false
}

// SlotCount returns the number of display rows a day occupies at the
// given zoom level. A window shorter than one display slot still
// occupies a single row.
func (c Config) SlotCount(level ZoomLevel) int {
	window := c.DayEnd - c.DayStart
	count := (window + level.SlotMinutes - 1) / level.SlotMinutes
	if count < 1 {
		return 1
	}
	return count
}
