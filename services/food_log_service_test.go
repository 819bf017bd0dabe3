package services

import (
	"context"
	"testing"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.GoalProfile{},
	))
	return db
}

// stubResolver returns a canned resolution without touching the network.
type stubResolver struct {
	out ResolvedFood
}

func (s *stubResolver) Resolve(ctx context.Context, foodText string) *ResolvedFood {
	out := s.out
	out.OriginalText = foodText
	return &out
}

func newTestFoodLog(t *testing.T, resolved ResolvedFood) (*FoodLogService, *gorm.DB) {
	db := newTestDB(t)
	goals := NewGoalService(db)
	svc := NewFoodLogService(db, &stubResolver{out: resolved}, goals, NewUndoRegistry(), nil)
	return svc, db
}

func TestLogFoodAndSummary(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{
		FoodName: "Rice Bowl", Quantity: "1 bowl",
		Calories: 350, Protein: 12, Carbs: 60, Fats: 8, Fiber: 4,
		MealType: models.MealLunch,
	})
	day := time.Date(2026, 8, 30, 13, 0, 0, 0, time.Local)

	_, err := svc.LogFood(context.Background(), 1, day, "a rice bowl")
	require.NoError(t, err)

	svc.resolver = &stubResolver{out: ResolvedFood{
		FoodName: "Yogurt", Calories: 180, Protein: 9, Carbs: 20, Fats: 6,
		MealType: models.MealSnack,
	}}
	_, err = svc.LogFood(context.Background(), 1, day, "a yogurt")
	require.NoError(t, err)

	summary, err := svc.Summary(1, day)
	require.NoError(t, err)
	assert.Equal(t, 530.0, summary.Totals.Calories)
	assert.Equal(t, 2, summary.Totals.Entries)
	assert.Equal(t, 1470.0, summary.Progress.Calories.Remaining)
	assert.InDelta(t, 26.5, summary.Progress.Calories.Percent, 1e-9)
	assert.Len(t, summary.Entries, 2)
}

func TestEntriesArePartitionedByDate(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{FoodName: "Toast", Calories: 120})
	monday := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	tuesday := monday.Add(24 * time.Hour)

	_, err := svc.LogFood(context.Background(), 1, monday, "toast")
	require.NoError(t, err)

	entries, err := svc.ListEntries(1, tuesday)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = svc.ListEntries(1, monday)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEntriesArePartitionedByUser(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{FoodName: "Toast", Calories: 120})
	day := time.Now()

	_, err := svc.LogFood(context.Background(), 1, day, "toast")
	require.NoError(t, err)

	entries, err := svc.ListEntries(2, day)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteThenUndoRestoresTotals(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{
		FoodName: "Burrito", Calories: 650, Protein: 28, Carbs: 70, Fats: 24,
	})
	day := time.Now()

	entry, err := svc.LogFood(context.Background(), 1, day, "a burrito")
	require.NoError(t, err)

	before, err := svc.Summary(1, day)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(1, entry.EntryID))

	mid, err := svc.Summary(1, day)
	require.NoError(t, err)
	assert.Zero(t, mid.Totals.Calories)

	restored, err := svc.RestoreLast(1)
	require.NoError(t, err)
	assert.NotEqual(t, entry.EntryID, restored.EntryID, "restore mints a fresh id")

	after, err := svc.Summary(1, day)
	require.NoError(t, err)
	assert.Equal(t, before.Totals, after.Totals)
}

func TestUndoWithNothingDeleted(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{FoodName: "Toast", Calories: 120})

	_, err := svc.RestoreLast(1)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestDeleteEntryScopedToOwner(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{FoodName: "Toast", Calories: 120})

	entry, err := svc.LogFood(context.Background(), 1, time.Now(), "toast")
	require.NoError(t, err)

	err = svc.DeleteEntry(2, entry.EntryID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHistorySkipsEmptyDays(t *testing.T) {
	svc, _ := newTestFoodLog(t, ResolvedFood{FoodName: "Toast", Calories: 120})
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	wednesday := monday.Add(48 * time.Hour)

	_, err := svc.LogFood(context.Background(), 1, monday, "toast")
	require.NoError(t, err)
	_, err = svc.LogFood(context.Background(), 1, wednesday, "toast")
	require.NoError(t, err)

	days, err := svc.History(1, monday, wednesday)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-08-31", days[0].Date)
	assert.Equal(t, "2026-09-02", days[1].Date)
}
