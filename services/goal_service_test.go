package services

import (
	"testing"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalDefaultsWhenUnconfigured(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	goal, err := svc.Get(42)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCalorieGoal, goal.CalorieGoal)
	assert.Equal(t, models.DefaultProteinGoal, goal.ProteinGoal)
	assert.Equal(t, models.ActivityModeratelyActive, goal.ActivityLevel)
	assert.Nil(t, goal.Age)
}

func TestGoalPartialUpdateKeepsOtherFields(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	cal := 2400
	_, err := svc.Update(42, GoalUpdate{CalorieGoal: &cal})
	require.NoError(t, err)

	weight := 82.5
	updated, err := svc.Update(42, GoalUpdate{WeightKg: &weight})
	require.NoError(t, err)

	assert.Equal(t, 2400, updated.CalorieGoal)
	assert.Equal(t, models.DefaultProteinGoal, updated.ProteinGoal)
	require.NotNil(t, updated.WeightKg)
	assert.Equal(t, 82.5, *updated.WeightKg)
}

func TestGoalUpdateRejectsNonPositiveTarget(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	cal := 2200
	_, err := svc.Update(42, GoalUpdate{CalorieGoal: &cal})
	require.NoError(t, err)

	zero := 0
	_, err = svc.Update(42, GoalUpdate{CalorieGoal: &zero})
	assert.ErrorIs(t, err, ErrInvalidGoal)

	// stored profile unchanged
	goal, err := svc.Get(42)
	require.NoError(t, err)
	assert.Equal(t, 2200, goal.CalorieGoal)

	negative := -10
	_, err = svc.Update(42, GoalUpdate{ProteinGoal: &negative})
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestGoalRecommendationsIncompleteProfile(t *testing.T) {
	svc := NewGoalService(newTestDB(t))

	age := 30
	_, err := svc.Update(42, GoalUpdate{Age: &age})
	require.NoError(t, err)

	recs, err := svc.Recommendations(42)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Complete your profile")
}
