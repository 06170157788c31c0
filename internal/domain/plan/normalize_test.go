package plan_test

import (
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/stretchr/testify/require"
)

func normalizeConfig() grid.Config {
	return grid.Config{
		Days:            []string{"Montag", "Dienstag"},
		DayStart:        480,
		DayEnd:          1320,
		BaseSlotMinutes: 5,
	}
}

func item(uid string, start, end int) plan.Item {
	return plan.Item{UID: uid, Kind: plan.KindMethod, StartMinutes: start, EndMinutes: end}
}

func TestNormalizeItemAligned(t *testing.T) {
	cfg := normalizeConfig()

	it := plan.NormalizeItem(item("a", 540, 600), cfg)
	require.Equal(t, 540, it.StartMinutes)
	require.Equal(t, 600, it.EndMinutes)
}

func TestNormalizeItemSnapsStartAndDuration(t *testing.T) {
	cfg := normalizeConfig()

	// Duration rounds up from the original 59 minute span, not from the
	// span left after the start snapped down.
	it := plan.NormalizeItem(item("a", 542, 601), cfg)
	require.Equal(t, 540, it.StartMinutes)
	require.Equal(t, 600, it.EndMinutes)
}

func TestNormalizeItemShiftsBackwardOnOverflow(t *testing.T) {
	cfg := normalizeConfig()

	// 1318 snaps to 1315; the 12 minute span rounds up to 15, which
	// overflows the window, so the whole item shifts backward.
	it := plan.NormalizeItem(item("a", 1318, 1330), cfg)
	require.Equal(t, 1305, it.StartMinutes)
	require.Equal(t, 1320, it.EndMinutes)
}

func TestNormalizeItemZeroLength(t *testing.T) {
	cfg := normalizeConfig()

	it := plan.NormalizeItem(item("a", 540, 540), cfg)
	require.Equal(t, 540, it.StartMinutes)
	require.Equal(t, 545, it.EndMinutes)
}

func TestNormalizeItemInverted(t *testing.T) {
	cfg := normalizeConfig()

	// End before start degrades to a single slot at the snapped start
	it := plan.NormalizeItem(item("a", 600, 540), cfg)
	require.Equal(t, 600, it.StartMinutes)
	require.Equal(t, 605, it.EndMinutes)
}

func TestNormalizeItemRepairsIdentity(t *testing.T) {
	cfg := normalizeConfig()

	it := plan.NormalizeItem(plan.Item{StartMinutes: 540, EndMinutes: 600, Kind: "banana"}, cfg)
	require.NotEmpty(t, it.UID)
	require.Equal(t, plan.KindMethod, it.Kind)

	kept := plan.NormalizeItem(plan.Item{UID: "keep", Kind: plan.KindBreak, StartMinutes: 540, EndMinutes: 600}, cfg)
	require.Equal(t, "keep", kept.UID)
	require.Equal(t, plan.KindBreak, kept.Kind)
}

func TestNormalizeItemIdempotent(t *testing.T) {
	cfg := normalizeConfig()

	inputs := []plan.Item{
		item("a", 542, 601),
		item("b", 1318, 1330),
		item("c", 0, 10000),
		item("d", 600, 540),
	}
	for _, in := range inputs {
		once := plan.NormalizeItem(in, cfg)
		require.Equal(t, once, plan.NormalizeItem(once, cfg), "item %s", in.UID)
	}
}

func TestNormalizePlanDropsUnknownDays(t *testing.T) {
	cfg := normalizeConfig()

	p := &plan.Plan{Days: map[string][]plan.Item{
		"Montag":  {item("a", 540, 600)},
		"Sonntag": {item("b", 540, 600)},
	}}

	next := plan.NormalizePlan(p, cfg)
	require.Len(t, next.Days, 2)
	require.Len(t, next.Days["Montag"], 1)
	require.Empty(t, next.Days["Dienstag"])
	require.NotContains(t, next.Days, "Sonntag")
}

func TestNormalizePlanKeepsCollisions(t *testing.T) {
	// A coarser grid can force items together; both survive
	cfg := normalizeConfig()
	cfg.BaseSlotMinutes = 60

	p := &plan.Plan{Days: map[string][]plan.Item{
		"Montag": {item("a", 540, 570), item("b", 570, 600)},
	}}

	next := plan.NormalizePlan(p, cfg)
	require.Len(t, next.Days["Montag"], 2)
	require.True(t, plan.Overlaps(next.Days["Montag"][0], next.Days["Montag"][1]))
}

func TestNormalizePlanNil(t *testing.T) {
	cfg := normalizeConfig()

	next := plan.NormalizePlan(nil, cfg)
	require.Len(t, next.Days, 2)
	require.Empty(t, next.Days["Montag"])
}
