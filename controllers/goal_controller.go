package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/RohitMacherla3/Viveo/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
	food  *services.FoodLogService
}

func NewGoalController(goals *services.GoalService, food *services.FoodLogService) *GoalController {
	return &GoalController{goals: goals, food: food}
}

// GET /goals — current targets plus today's progress against them.
func (g *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := g.goals.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := g.food.Summary(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": summary.Progress})
}

// PUT /goals — partial update; non-positive targets are rejected and
// the stored profile stays as it was.
func (g *GoalController) UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.GoalUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := g.goals.Update(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidGoal) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goal})
}

// GET /goals/recommendations
func (g *GoalController) GetRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	recs, err := g.goals.Recommendations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
