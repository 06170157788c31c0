package grid

// Preset is a named ready-made configuration.
type Preset struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Config Config `json:"config"`
}

var standardBreaks = []BreakRule{
	{Days: []string{BreakDaysAll}, StartMinutes: 12 * 60, DurationMinutes: 60},
}

// Presets lists the built-in configurations, in display order.
var Presets = []Preset{
	{
		Key:  "standard-week",
		Name: "Standard-Woche",
		Config: Config{
			Days:            []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"},
			DayStart:        8*60 + 30,
			DayEnd:          17*60 + 30,
			BaseSlotMinutes: 15,
			BreakRules:      standardBreaks,
		},
	},
	{
		Key:  "weekend-seminar",
		Name: "Wochenendseminar",
		Config: Config{
			Days:            []string{"Freitag", "Samstag", "Sonntag"},
			DayStart:        8*60 + 30,
			DayEnd:          17*60 + 30,
			BaseSlotMinutes: 15,
			BreakRules:      standardBreaks,
		},
	},
	{
		Key:  "half-week-mo-mi",
		Name: "Halbe Woche (Mo-Mi)",
		Config: Config{
			Days:            []string{"Montag", "Dienstag", "Mittwoch"},
			DayStart:        8*60 + 30,
			DayEnd:          17*60 + 30,
			BaseSlotMinutes: 15,
			BreakRules:      standardBreaks,
		},
	},
	{
		Key:  "half-week-mi-fr",
		Name: "Halbe Woche (Mi-Fr)",
		Config: Config{
			Days:            []string{"Mittwoch", "Donnerstag", "Freitag"},
			DayStart:        8*60 + 30,
			DayEnd:          17*60 + 30,
			BaseSlotMinutes: 15,
			BreakRules:      standardBreaks,
		},
	},
	{
		Key:  "compact-day",
		Name: "Kompakttag",
		Config: Config{
			Days:            []string{"Montag"},
			DayStart:        8*60 + 30,
			DayEnd:          17*60 + 30,
			BaseSlotMinutes: 15,
			BreakRules:      standardBreaks,
		},
	},
}

// DefaultConfig is the configuration used before any apply.
var DefaultConfig = Config{
	Days:            []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"},
	DayStart:        8 * 60,
	DayEnd:          22 * 60,
	BaseSlotMinutes: 5,
	Zoom:            DefaultZoom,
}

// PresetByKey looks up a built-in preset.
func PresetByKey(key string) (Preset, bool) {
	for _, p := range Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
