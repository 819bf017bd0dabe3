package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/RohitMacherla3/Viveo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodLogController struct {
	food *services.FoodLogService
}

func NewFoodLogController(food *services.FoodLogService) *FoodLogController {
	return &FoodLogController{food: food}
}

type LogFoodInput struct {
	FoodText string `json:"food_text" binding:"required"`
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today
}

// POST /food/log
func (f *FoodLogController) LogFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entry, err := f.food.LogFood(c.Request.Context(), userID, date, input.FoodText)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEntry) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, services.ToDisplay(entry))
}

// GET /food/entries?date=YYYY-MM-DD
func (f *FoodLogController) ListEntries(c *gin.Context) {
	userID := c.GetUint("userID")

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	entries, err := f.food.ListEntries(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]services.EntryDisplay, 0, len(entries))
	for i := range entries {
		out = append(out, services.ToDisplay(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "entries": out})
}

// DELETE /food/entries/:id
func (f *FoodLogController) DeleteEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID := c.Param("id")

	if err := f.food.DeleteEntry(userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /food/undo — restore the most recently deleted entry.
func (f *FoodLogController) UndoDelete(c *gin.Context) {
	userID := c.GetUint("userID")

	entry, err := f.food.RestoreLast(userID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyBuffer) {
			// a no-op notice, not a failure
			c.JSON(http.StatusOK, gin.H{"restored": false, "message": "nothing to restore"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true, "entry": services.ToDisplay(entry)})
}

// GET /food/summary?date=YYYY-MM-DD
func (f *FoodLogController) GetSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	summary, err := f.food.Summary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /food/history?from=YYYY-MM-DD&to=YYYY-MM-DD
func (f *FoodLogController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date. Use YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date. Use YYYY-MM-DD"})
		return
	}

	history, err := f.food.History(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": history})
}

// parseDateParam reads the optional ?date= query, defaulting to today.
// Writes the error response itself when the format is bad.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
