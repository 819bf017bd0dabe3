package services

import (
	"testing"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResolved() *ResolvedFood {
	return &ResolvedFood{
		FoodName:   "Grilled Chicken Breast",
		Quantity:   "200g",
		Calories:   330,
		Protein:    62,
		Carbs:      0,
		Fats:       7.2,
		Fiber:      0,
		FoodReview: "Lean, high-protein choice.",
		MealType:   models.MealDinner,
	}
}

func TestNewFoodEntryRequiresOwnerAndDate(t *testing.T) {
	_, err := NewFoodEntry(0, time.Now(), sampleResolved())
	assert.ErrorIs(t, err, ErrInvalidEntry)

	_, err = NewFoodEntry(7, time.Time{}, sampleResolved())
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestNewFoodEntryDefaults(t *testing.T) {
	r := sampleResolved()
	r.FoodName = ""
	r.Quantity = ""
	r.MealType = "brunch" // not a known meal type

	entry, err := NewFoodEntry(7, time.Now(), r)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Food Item", entry.FoodName)
	assert.Equal(t, "1 serving", entry.Quantity)
	assert.Equal(t, models.MealUnknown, entry.MealType)
	assert.NotEmpty(t, entry.EntryID)
}

func TestNewFoodEntryClampsNegatives(t *testing.T) {
	r := sampleResolved()
	r.Calories = -50
	r.Protein = -1

	entry, err := NewFoodEntry(7, time.Now(), r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.Calories)
	assert.Equal(t, 0.0, entry.Protein)
	assert.Equal(t, 7.2, entry.Fats) // valid values untouched
}

func TestNewFoodEntryTruncatesDate(t *testing.T) {
	at := time.Date(2026, 8, 30, 17, 42, 11, 0, time.Local)
	entry, err := NewFoodEntry(7, at, sampleResolved())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local), entry.Date)
}

func TestToDisplayRoundsHalfUp(t *testing.T) {
	entry := &models.FoodEntry{
		Calories: 26.5,
		Protein:  8.4,
		Carbs:    10.5,
		Fats:     0.49,
		Fiber:    2.51,
		LoggedAt: time.Now(),
	}

	d := ToDisplay(entry)
	assert.Equal(t, 27, d.Calories)
	assert.Equal(t, 8, d.Protein)
	assert.Equal(t, 11, d.Carbs)
	assert.Equal(t, 0, d.Fats)
	assert.Equal(t, 3, d.Fiber)
}
