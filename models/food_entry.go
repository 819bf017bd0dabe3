package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal type values accepted on a food entry. Anything else is
// normalized to MealUnknown at construction time.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealUnknown   = "unknown"
)

// FoodEntry is one logged food item with its nutrition snapshot.
// An entry belongs to exactly one (user, date) partition for its whole
// life; changing the date means delete + re-log.
type FoodEntry struct {
	gorm.Model
	EntryID  string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	FoodName string    `gorm:"not null"`
	Quantity string    // free-form, e.g. "200g", "1 cup"
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	MealType string `gorm:"size:16;default:unknown"`
	Review   string `gorm:"type:text"` // resolver commentary, optional
	LoggedAt time.Time
}
