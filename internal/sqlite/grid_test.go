package sqlite

import (
	"context"
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestGridRepository_LoadEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewGridRepository(db)
	ctx := context.Background()

	_, err := repo.LoadConfig(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGridRepository_SaveLoad(t *testing.T) {
	db := NewTestDB(t)
	repo := NewGridRepository(db)
	ctx := context.Background()

	cfg := grid.Config{
		Days:            []string{"Mo", "Di", "Mi"},
		DayStart:        510,
		DayEnd:          1050,
		BaseSlotMinutes: 15,
		BreakRules: []grid.BreakRule{
			{Days: []string{grid.BreakDaysAll}, StartMinutes: 720, DurationMinutes: 60},
		},
		Zoom: grid.ZoomMedium,
	}

	err := repo.SaveConfig(ctx, cfg)
	require.NoError(t, err)

	loaded, err := repo.LoadConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestGridRepository_SaveReplaces(t *testing.T) {
	db := NewTestDB(t)
	repo := NewGridRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveConfig(ctx, grid.DefaultConfig))

	next := grid.DefaultConfig
	next.BaseSlotMinutes = 30
	require.NoError(t, repo.SaveConfig(ctx, next))

	loaded, err := repo.LoadConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, 30, loaded.BaseSlotMinutes)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM grid_configs").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
