package services

import (
	"fmt"
	"math"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/RohitMacherla3/Viveo/utils"
)

// Status bands for the calorie progress bar.
const (
	StatusOnTrack    = "on_track"
	StatusWarning    = "warning"
	StatusOverTarget = "over_target"
)

// MacroProgress pairs consumed vs. target for one nutrient. Percent is
// clamped to [0, 100] for display; banding uses the unclamped ratio.
type MacroProgress struct {
	Consumed  float64 `json:"consumed"`
	Goal      float64 `json:"goal"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// ProgressView is everything the UI needs to render a day: per-nutrient
// progress, the calorie status band, and advisory text.
type ProgressView struct {
	Calories        MacroProgress `json:"calories"`
	Protein         MacroProgress `json:"protein"`
	Carbs           MacroProgress `json:"carbs"`
	Fats            MacroProgress `json:"fats"`
	Status          string        `json:"status"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// ComputeProgress combines a day's totals with the user's goal profile.
// Pure and re-entrant; safe from any execution context.
func ComputeProgress(totals DailyTotals, goal *models.GoalProfile) ProgressView {
	return ProgressView{
		Calories: macroProgress(totals.Calories, float64(goal.CalorieGoal)),
		Protein:  macroProgress(totals.Protein, float64(goal.ProteinGoal)),
		Carbs:    macroProgress(totals.Carbs, float64(goal.CarbsGoal)),
		Fats:     macroProgress(totals.Fats, float64(goal.FatsGoal)),
		Status:   progressStatus(rawPercent(totals.Calories, float64(goal.CalorieGoal))),
	}
}

func macroProgress(consumed, goal float64) MacroProgress {
	return MacroProgress{
		Consumed:  consumed,
		Goal:      goal,
		Remaining: Remaining(goal, consumed),
		Percent:   math.Min(100, rawPercent(consumed, goal)),
	}
}

func rawPercent(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return 100 * consumed / goal
}

// progressStatus bands the unclamped calorie percent: strictly above
// 100 is over target, 80 to 100 inclusive warns, below 80 is on track.
func progressStatus(percent float64) string {
	switch {
	case percent > 100:
		return StatusOverTarget
	case percent >= 80:
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// calorieGapThreshold is how far (kcal) the calorie goal may drift from
// estimated TDEE before we call out a surplus or deficit.
const calorieGapThreshold = 200

// Recommendations derives advisory strings from the goal profile. All
// checks need age, weight and height; with any of them missing the only
// output is a prompt to finish the profile.
func Recommendations(goal *models.GoalProfile) []string {
	if !goal.Complete() {
		return []string{"Complete your profile (age, weight and height) to unlock personalized recommendations."}
	}

	sex := ""
	if goal.Sex != nil {
		sex = *goal.Sex
	}
	bmr := utils.CalculateBMR(*goal.WeightKg, *goal.HeightCm, *goal.Age, sex)
	tdee := utils.CalculateTDEE(bmr, goal.ActivityLevel)

	var recs []string

	proteinPerKg := float64(goal.ProteinGoal) / *goal.WeightKg
	if proteinPerKg < 1.2 {
		recs = append(recs, fmt.Sprintf(
			"Your protein goal is %.1f g per kg of body weight; consider raising it to at least 1.2 g/kg.",
			proteinPerKg))
	} else if proteinPerKg > 2.2 {
		recs = append(recs, fmt.Sprintf(
			"Your protein goal is %.1f g per kg of body weight; with intake that high, keep your hydration up.",
			proteinPerKg))
	}

	if goal.ActivityLevel == models.ActivitySedentary {
		recs = append(recs, "You are set to sedentary; adding even light daily activity would raise your energy needs.")
	}

	gap := float64(goal.CalorieGoal) - tdee
	if math.Abs(gap) > calorieGapThreshold {
		if gap > 0 {
			recs = append(recs, fmt.Sprintf(
				"Your calorie goal is %.0f kcal above your estimated TDEE (%.0f kcal) — a surplus that supports weight gain.",
				gap, tdee))
		} else {
			recs = append(recs, fmt.Sprintf(
				"Your calorie goal is %.0f kcal below your estimated TDEE (%.0f kcal) — a deficit that supports weight loss.",
				-gap, tdee))
		}
	}

	return recs
}
