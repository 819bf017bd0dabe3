package services

import (
	"math"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/google/uuid"
)

// NewFoodEntry builds a validated entry from resolver output. The owner
// and date are the only hard requirements; everything the resolver got
// wrong degrades to a default instead of failing, so partial data never
// blocks logging.
func NewFoodEntry(userID uint, date time.Time, r *ResolvedFood) (*models.FoodEntry, error) {
	if userID == 0 || date.IsZero() {
		return nil, ErrInvalidEntry
	}

	entry := &models.FoodEntry{
		EntryID:  uuid.NewString(),
		UserID:   userID,
		Date:     DayStart(date),
		FoodName: r.FoodName,
		Quantity: r.Quantity,
		Calories: clampNonNegative(r.Calories),
		Protein:  clampNonNegative(r.Protein),
		Carbs:    clampNonNegative(r.Carbs),
		Fats:     clampNonNegative(r.Fats),
		Fiber:    clampNonNegative(r.Fiber),
		MealType: normalizeMealType(r.MealType),
		Review:   r.FoodReview,
		LoggedAt: time.Now(),
	}
	if entry.FoodName == "" {
		entry.FoodName = "Unknown Food Item"
	}
	if entry.Quantity == "" {
		entry.Quantity = "1 serving"
	}
	return entry, nil
}

// EntryDisplay is the rendering projection of a food entry. Nutrition
// values are rounded half-up to whole calories/grams here and only here;
// aggregation always runs on the raw floats.
type EntryDisplay struct {
	EntryID  string `json:"entry_id"`
	FoodName string `json:"food_name"`
	Quantity string `json:"quantity"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	Fiber    int    `json:"fiber"`
	MealType string `json:"meal_type"`
	Review   string `json:"food_review,omitempty"`
	LoggedAt string `json:"timestamp"`
	Date     string `json:"date"`
}

func ToDisplay(e *models.FoodEntry) EntryDisplay {
	return EntryDisplay{
		EntryID:  e.EntryID,
		FoodName: e.FoodName,
		Quantity: e.Quantity,
		Calories: roundDisplay(e.Calories),
		Protein:  roundDisplay(e.Protein),
		Carbs:    roundDisplay(e.Carbs),
		Fats:     roundDisplay(e.Fats),
		Fiber:    roundDisplay(e.Fiber),
		MealType: e.MealType,
		Review:   e.Review,
		LoggedAt: e.LoggedAt.Format(time.RFC3339),
		Date:     e.Date.Format("2006-01-02"),
	}
}

// DayStart truncates a timestamp to its calendar date, which is the
// ledger partition key.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampNonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func normalizeMealType(mt string) string {
	switch mt {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return mt
	}
	return models.MealUnknown
}

func roundDisplay(v float64) int {
	return int(math.Round(v))
}
