package grid_test

import (
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := testConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*grid.Config)
	}{
		{"no days", func(c *grid.Config) { c.Days = nil }},
		{"empty day label", func(c *grid.Config) { c.Days = []string{"Montag", ""} }},
		{"duplicate day", func(c *grid.Config) { c.Days = []string{"Montag", "Montag"} }},
		{"reserved day label", func(c *grid.Config) { c.Days = []string{"Montag", grid.BreakDaysAll} }},
		{"start after end", func(c *grid.Config) { c.DayStart = 1320; c.DayEnd = 480 }},
		{"start equals end", func(c *grid.Config) { c.DayStart = 480; c.DayEnd = 480 }},
		{"zero slot", func(c *grid.Config) { c.BaseSlotMinutes = 0 }},
		{"negative slot", func(c *grid.Config) { c.BaseSlotMinutes = -5 }},
		{"unknown zoom", func(c *grid.Config) { c.Zoom = "huge" }},
		{"break without duration", func(c *grid.Config) {
			c.BreakRules = []grid.BreakRule{{Days: []string{grid.BreakDaysAll}, StartMinutes: 720}}
		}},
		{"break on unknown day", func(c *grid.Config) {
			c.BreakRules = []grid.BreakRule{{Days: []string{"Sonntag"}, StartMinutes: 720, DurationMinutes: 60}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), grid.ErrInvalidConfig)
		})
	}
}

func TestHasDay(t *testing.T) {
	cfg := testConfig()

	require.True(t, cfg.HasDay("Montag"))
	require.False(t, cfg.HasDay("Sonntag"))
	require.False(t, cfg.HasDay(""))
}

func TestExpandBreakDays(t *testing.T) {
	cfg := testConfig()

	all := cfg.ExpandBreakDays(grid.BreakRule{Days: []string{grid.BreakDaysAll}, DurationMinutes: 60})
	require.Equal(t, cfg.Days, all)

	named := cfg.ExpandBreakDays(grid.BreakRule{Days: []string{"Dienstag"}, DurationMinutes: 60})
	require.Equal(t, []string{"Dienstag"}, named)

	// Days no longer in the configuration are silently dropped
	stale := cfg.ExpandBreakDays(grid.BreakRule{Days: []string{"Dienstag", "Sonntag"}, DurationMinutes: 60})
	require.Equal(t, []string{"Dienstag"}, stale)
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	require.NotEmpty(t, grid.Presets)
	seen := map[string]bool{}
	for _, preset := range grid.Presets {
		require.NoError(t, preset.Config.Validate(), "preset %s", preset.Key)
		require.False(t, seen[preset.Key], "duplicate preset key %s", preset.Key)
		seen[preset.Key] = true
	}

	require.NoError(t, grid.DefaultConfig.Validate())
}

func TestPresetByKey(t *testing.T) {
	preset, ok := grid.PresetByKey("weekend-seminar")
	require.True(t, ok)
	require.Equal(t, []string{"Freitag", "Samstag", "Sonntag"}, preset.Config.Days)

	_, ok = grid.PresetByKey("does-not-exist")
	require.False(t, ok)
}

func TestZoomByID(t *testing.T) {
	level, ok := grid.ZoomByID(grid.ZoomFine)
	require.True(t, ok)
	require.Equal(t, 5, level.SlotMinutes)

	_, ok = grid.ZoomByID("gigantic")
	require.False(t, ok)
}
