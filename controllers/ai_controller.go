package controllers

import (
	"net/http"

	"github.com/RohitMacherla3/Viveo/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	ai *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{ai: ai}
}

type AskInput struct {
	Query string `json:"query" binding:"required"`
}

// POST /ai/ask
func (a *AIController) Ask(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := a.ai.Ask(c.Request.Context(), userID, input.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}

// DELETE /ai/history
func (a *AIController) ClearHistory(c *gin.Context) {
	a.ai.ClearHistory(c.GetUint("userID"))
	c.Status(http.StatusNoContent)
}
