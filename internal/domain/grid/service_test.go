package grid_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/repository"
	"github.com/rgeller/seminargrid/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeConfigRepo struct {
	stored  *grid.Config
	saveErr error
	saves   int
}

func (f *fakeConfigRepo) SaveConfig(ctx context.Context, cfg grid.Config) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = &cfg
	f.saves++
	return nil
}

func (f *fakeConfigRepo) LoadConfig(ctx context.Context) (grid.Config, error) {
	if f.stored == nil {
		return grid.Config{}, repository.ErrNotFound
	}
	return *f.stored, nil
}

type fakeConformer struct {
	calls     []string
	seeded    [][3]any
	seedAllow bool
}

func (f *fakeConformer) ReshapeDays(ctx context.Context, days []string) {
	f.calls = append(f.calls, "reshape")
}

func (f *fakeConformer) MigrateItems(ctx context.Context) {
	f.calls = append(f.calls, "migrate")
}

func (f *fakeConformer) SeedBreak(ctx context.Context, day string, start, duration int) bool {
	f.calls = append(f.calls, "seed")
	f.seeded = append(f.seeded, [3]any{day, start, duration})
	return f.seedAllow
}

func (f *fakeConformer) Persist(ctx context.Context) {
	f.calls = append(f.calls, "persist")
}

func TestServiceLoadKeepsDefaultWhenEmpty(t *testing.T) {
	repo := new(mocks.GridRepository)
	repo.On("LoadConfig", mock.Anything).Return(grid.Config{}, repository.ErrNotFound)
	svc := grid.NewService(repo, nil)

	require.NoError(t, svc.Load(context.Background()))
	require.Equal(t, grid.DefaultConfig, svc.Current())
	repo.AssertExpectations(t)
}

func TestServiceLoadRestoresPersisted(t *testing.T) {
	stored := testConfig()
	stored.Zoom = grid.ZoomFine
	repo := new(mocks.GridRepository)
	repo.On("LoadConfig", mock.Anything).Return(stored, nil)
	svc := grid.NewService(repo, nil)

	require.NoError(t, svc.Load(context.Background()))
	require.Equal(t, stored, svc.Current())
	repo.AssertExpectations(t)
}

func TestServiceLoadDefaultsZoom(t *testing.T) {
	stored := testConfig()
	svc := grid.NewService(&fakeConfigRepo{stored: &stored}, nil)

	require.NoError(t, svc.Load(context.Background()))
	require.Equal(t, grid.DefaultZoom, svc.Current().Zoom)
}

func TestServiceLoadIgnoresInvalidPersisted(t *testing.T) {
	stored := testConfig()
	stored.BaseSlotMinutes = 0
	svc := grid.NewService(&fakeConfigRepo{stored: &stored}, nil)

	require.NoError(t, svc.Load(context.Background()))
	require.Equal(t, grid.DefaultConfig, svc.Current())
}

func TestServiceLoadPropagatesRepoFailure(t *testing.T) {
	repo := new(mocks.GridRepository)
	repo.On("LoadConfig", mock.Anything).Return(grid.Config{}, errors.New("disk gone"))
	svc := grid.NewService(repo, nil)

	require.Error(t, svc.Load(context.Background()))
	repo.AssertExpectations(t)
}

func TestServiceApplyRejectsInvalid(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := grid.NewService(repo, nil)

	bad := testConfig()
	bad.DayStart = bad.DayEnd
	require.ErrorIs(t, svc.Apply(context.Background(), bad), grid.ErrInvalidConfig)
	require.Equal(t, grid.DefaultConfig, svc.Current())
	require.Zero(t, repo.saves)
}

func TestServiceApplyConformsPlan(t *testing.T) {
	repo := &fakeConfigRepo{}
	conformer := &fakeConformer{seedAllow: true}
	svc := grid.NewService(repo, nil)
	svc.BindPlan(conformer)

	cfg := testConfig()
	cfg.BreakRules = []grid.BreakRule{
		{Days: []string{grid.BreakDaysAll}, StartMinutes: 720, DurationMinutes: 60},
	}
	require.NoError(t, svc.Apply(context.Background(), cfg))

	// Reshape before migrate, seeding after both, one persist at the end
	require.Equal(t, []string{"reshape", "migrate", "seed", "seed", "persist"}, conformer.calls)
	require.Equal(t, [3]any{"Montag", 720, 60}, conformer.seeded[0])
	require.Equal(t, [3]any{"Dienstag", 720, 60}, conformer.seeded[1])
	require.Equal(t, 1, repo.saves)
}

func TestServiceApplySurvivesSaveFailure(t *testing.T) {
	repo := &fakeConfigRepo{saveErr: errors.New("disk full")}
	svc := grid.NewService(repo, nil)

	cfg := testConfig()
	require.NoError(t, svc.Apply(context.Background(), cfg))
	require.Equal(t, cfg.Days, svc.Current().Days)
}

func TestServiceApplyKeepsZoomWhenUnset(t *testing.T) {
	svc := grid.NewService(&fakeConfigRepo{}, nil)
	_, err := svc.SetZoom(context.Background(), grid.ZoomFine)
	require.NoError(t, err)

	cfg := testConfig()
	require.NoError(t, svc.Apply(context.Background(), cfg))
	require.Equal(t, grid.ZoomFine, svc.Current().Zoom)
}

func TestServiceApplyPreset(t *testing.T) {
	repo := &fakeConfigRepo{}
	conformer := &fakeConformer{seedAllow: true}
	svc := grid.NewService(repo, nil)
	svc.BindPlan(conformer)

	require.NoError(t, svc.ApplyPreset(context.Background(), "compact-day"))
	require.Equal(t, []string{"Montag"}, svc.Current().Days)
	require.Equal(t, 15, svc.Current().BaseSlotMinutes)

	require.ErrorIs(t, svc.ApplyPreset(context.Background(), "bogus"), grid.ErrUnknownPreset)
}

func TestServiceSetZoom(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := grid.NewService(repo, nil)

	level, err := svc.SetZoom(context.Background(), grid.ZoomMedium)
	require.NoError(t, err)
	require.Equal(t, 15, level.SlotMinutes)
	require.Equal(t, grid.ZoomMedium, svc.Current().Zoom)
	require.Equal(t, 1, repo.saves)

	_, err = svc.SetZoom(context.Background(), "gigantic")
	require.ErrorIs(t, err, grid.ErrUnknownZoom)
}
