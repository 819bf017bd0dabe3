package models

import (
	"gorm.io/gorm"
)

// Default daily targets applied when a user has not configured goals yet.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 150
	DefaultCarbsGoal   = 250
	DefaultFatsGoal    = 65
)

// Activity levels and their TDEE multipliers live in utils/energy.go.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtremelyActive  = "extremely_active"
)

// GoalProfile holds each user's daily nutrient targets plus the optional
// biometrics that feed BMR/TDEE recommendations. Biometrics stay nil
// until the user supplies them.
type GoalProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	CalorieGoal int `gorm:"default:2000"` // kcal
	ProteinGoal int `gorm:"default:150"`  // g
	CarbsGoal   int `gorm:"default:250"`  // g
	FatsGoal    int `gorm:"default:65"`   // g

	Age           *int
	WeightKg      *float64
	HeightCm      *float64
	Sex           *string `gorm:"size:8"`
	ActivityLevel string  `gorm:"size:24;default:moderately_active"`
}

// DefaultGoalProfile returns the unconfigured profile for a user.
func DefaultGoalProfile(userID uint) GoalProfile {
	return GoalProfile{
		UserID:        userID,
		CalorieGoal:   DefaultCalorieGoal,
		ProteinGoal:   DefaultProteinGoal,
		CarbsGoal:     DefaultCarbsGoal,
		FatsGoal:      DefaultFatsGoal,
		ActivityLevel: ActivityModeratelyActive,
	}
}

// Complete reports whether the biometrics needed for BMR/TDEE-based
// recommendations are all present.
func (g *GoalProfile) Complete() bool {
	return g.Age != nil && g.WeightKg != nil && g.HeightCm != nil
}
