package services

import (
	"github.com/RohitMacherla3/Viveo/models"
)

// DailyTotals is the derived ledger for one user+date: a pure function
// of the entry set, recomputed after every add/delete, never stored.
type DailyTotals struct {
	Calories float64 `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Carbs    float64 `json:"total_carbs"`
	Fats     float64 `json:"total_fats"`
	Fiber    float64 `json:"total_fiber"`
	Entries  int     `json:"entries_count"`
}

// AggregateEntries sums nutrition over the entry set in a single pass.
// Plain commutative addition, so the result is independent of entry
// order.
func AggregateEntries(entries []models.FoodEntry) DailyTotals {
	var t DailyTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
		t.Fiber += e.Fiber
	}
	t.Entries = len(entries)
	return t
}

// Remaining is how much of a daily target is left, floored at zero.
func Remaining(goal, consumed float64) float64 {
	if r := goal - consumed; r > 0 {
		return r
	}
	return 0
}
