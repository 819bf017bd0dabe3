package services

import (
	"errors"

	"github.com/RohitMacherla3/Viveo/models"
	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GoalUpdate is a partial update; nil fields keep their current value.
type GoalUpdate struct {
	CalorieGoal   *int     `json:"calorie_goal"`
	ProteinGoal   *int     `json:"protein_goal"`
	CarbsGoal     *int     `json:"carbs_goal"`
	FatsGoal      *int     `json:"fats_goal"`
	Age           *int     `json:"age"`
	WeightKg      *float64 `json:"weight"`
	HeightCm      *float64 `json:"height"`
	Sex           *string  `json:"sex"`
	ActivityLevel *string  `json:"activity_level"`
}

// Get returns the user's goal profile, or the default targets when the
// user has never configured one. The default is not persisted.
func (s *GoalService) Get(userID uint) (*models.GoalProfile, error) {
	var goal models.GoalProfile
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultGoalProfile(userID)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update applies a partial update. A non-positive daily target rejects
// the whole update with ErrInvalidGoal and leaves the stored profile
// untouched.
func (s *GoalService) Update(userID uint, in GoalUpdate) (*models.GoalProfile, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updated := *goal
	if in.CalorieGoal != nil {
		updated.CalorieGoal = *in.CalorieGoal
	}
	if in.ProteinGoal != nil {
		updated.ProteinGoal = *in.ProteinGoal
	}
	if in.CarbsGoal != nil {
		updated.CarbsGoal = *in.CarbsGoal
	}
	if in.FatsGoal != nil {
		updated.FatsGoal = *in.FatsGoal
	}
	if in.Age != nil {
		updated.Age = in.Age
	}
	if in.WeightKg != nil {
		updated.WeightKg = in.WeightKg
	}
	if in.HeightCm != nil {
		updated.HeightCm = in.HeightCm
	}
	if in.Sex != nil {
		updated.Sex = in.Sex
	}
	if in.ActivityLevel != nil {
		updated.ActivityLevel = *in.ActivityLevel
	}

	if updated.CalorieGoal <= 0 || updated.ProteinGoal <= 0 ||
		updated.CarbsGoal <= 0 || updated.FatsGoal <= 0 {
		return nil, ErrInvalidGoal
	}

	if updated.ID == 0 {
		// first save of a default profile
		if err := s.db.Create(&updated).Error; err != nil {
			return nil, err
		}
		return &updated, nil
	}
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Recommendations computes the advisory strings for the user's current
// profile.
func (s *GoalService) Recommendations(userID uint) ([]string, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	return Recommendations(goal), nil
}
