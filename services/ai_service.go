package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"gorm.io/gorm"
)

// How much conversation to keep per user. Oldest turns fall off first.
const maxHistoryMessages = 20

// How far back the assistant looks when a question touches the food log.
const foodContextDays = 7

// foodHistoryKeywords flag questions that should be answered against
// the user's actual log instead of general knowledge.
var foodHistoryKeywords = []string{
	"what did i eat", "what have i eaten", "my food", "food log",
	"today", "yesterday", "this week", "last week", "this month",
	"calories consumed", "protein intake", "carbs", "nutrition summary",
	"meal history", "diet", "food diary",
}

// AIService is the conversational nutrition assistant. It keeps a
// bounded in-memory history per user and, for food-history questions,
// injects a summary of recent log entries into the system prompt.
type AIService struct {
	llmClient
	db *gorm.DB

	mu            sync.Mutex
	conversations map[uint][]chatMessage
}

func NewAIService(db *gorm.DB) *AIService {
	return &AIService{
		llmClient:     newLLMClient(),
		db:            db,
		conversations: make(map[uint][]chatMessage),
	}
}

// Ask answers a user query, threading in conversation history and — for
// food-history questions — the relevant slice of the food log.
func (s *AIService) Ask(ctx context.Context, userID uint, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query must not be empty")
	}

	foodContext := ""
	if isFoodHistoryQuery(query) {
		foodContext = s.buildFoodContext(userID)
	}

	messages := []chatMessage{{Role: "system", Content: assistantSystemPrompt(foodContext)}}
	messages = append(messages, s.history(userID)...)
	messages = append(messages, chatMessage{Role: "user", Content: query})

	answer, err := s.chatCompletion(ctx, messages, 0.7)
	if err != nil {
		return "", err
	}

	s.remember(userID,
		chatMessage{Role: "user", Content: query},
		chatMessage{Role: "assistant", Content: answer},
	)
	return answer, nil
}

// ClearHistory drops a user's conversation, e.g. from the UI's reset.
func (s *AIService) ClearHistory(userID uint) {
	s.mu.Lock()
	delete(s.conversations, userID)
	s.mu.Unlock()
}

func (s *AIService) history(userID uint) []chatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]chatMessage(nil), s.conversations[userID]...)
}

func (s *AIService) remember(userID uint, msgs ...chatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := append(s.conversations[userID], msgs...)
	if len(h) > maxHistoryMessages {
		h = h[len(h)-maxHistoryMessages:]
	}
	s.conversations[userID] = h
}

func isFoodHistoryQuery(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range foodHistoryKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// buildFoodContext summarizes the last week of entries, grouped by day
// with per-day totals, formatted for prompt injection.
func (s *AIService) buildFoodContext(userID uint) string {
	to := DayStart(time.Now()).Add(24 * time.Hour)
	from := to.Add(-foodContextDays * 24 * time.Hour)

	var entries []models.FoodEntry
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, logged_at ASC").
		Find(&entries).Error; err != nil || len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	currentDay := ""
	var dayEntries []models.FoodEntry

	flush := func() {
		if currentDay == "" {
			return
		}
		t := AggregateEntries(dayEntries)
		sb.WriteString(fmt.Sprintf("%s (total: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat):\n",
			currentDay, t.Calories, t.Protein, t.Carbs, t.Fats))
		for _, e := range dayEntries {
			sb.WriteString(fmt.Sprintf("- %s (%s, %s): %.0f kcal, %.0fg protein\n",
				e.FoodName, e.Quantity, e.MealType, e.Calories, e.Protein))
		}
		dayEntries = dayEntries[:0]
	}

	for _, e := range entries {
		day := e.Date.Format("2006-01-02")
		if day != currentDay {
			flush()
			currentDay = day
		}
		dayEntries = append(dayEntries, e)
	}
	flush()

	return sb.String()
}

func assistantSystemPrompt(foodContext string) string {
	base := "You are a world-class nutritionist and personal food assistant. " +
		"Your responses should be concise and focused on nutrition-related topics. " +
		"You help users track their food intake, provide nutritional advice, and answer questions about their eating habits."

	if foodContext == "" {
		return base
	}
	return base + "\n\nIMPORTANT: The user is asking about their food history. " +
		"Here is their relevant food log data:\n\n" + foodContext +
		"\nUse this information to provide accurate, specific answers about their eating habits, " +
		"nutritional intake, and dietary patterns. Be conversational and helpful."
}
