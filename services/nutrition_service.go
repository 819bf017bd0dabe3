package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
)

// ResolvedFood is the structured output of the nutrition resolver for
// one raw food description. Treated as untrusted input downstream.
type ResolvedFood struct {
	FoodName     string  `json:"food_name"`
	Quantity     string  `json:"quantity"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	Fiber        float64 `json:"fiber"`
	FoodReview   string  `json:"food_review"`
	MealType     string  `json:"meal_type"`
	OriginalText string  `json:"original_text"`
}

// NutritionResolver turns a free-form food description into nutrition
// numbers. Resolve never fails: on any upstream problem it returns the
// estimated fallback entry, so logging keeps working offline.
type NutritionResolver interface {
	Resolve(ctx context.Context, foodText string) *ResolvedFood
}

// llmClient is the shared OpenAI-compatible chat-completions client
// used by the nutrition resolver and the chat assistant.
type llmClient struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func newLLMClient() llmClient {
	baseURL := os.Getenv("AI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return llmClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv("OPENAI_API_KEY"),
		model:   model,
	}
}

// NutritionService resolves food descriptions through the LLM.
type NutritionService struct {
	llmClient
}

func NewNutritionService() *NutritionService {
	return &NutritionService{llmClient: newLLMClient()}
}

func (s *NutritionService) Resolve(ctx context.Context, foodText string) *ResolvedFood {
	if s.token == "" {
		log.Printf("nutrition resolver: OPENAI_API_KEY not set, using fallback estimates")
		return fallbackEntry(foodText)
	}

	content, err := s.chatCompletion(ctx, []chatMessage{
		{Role: "system", Content: nutritionSystemPrompt()},
		{Role: "user", Content: "Convert this food description to structured JSON: " + foodText},
	}, 0.2)
	if err != nil {
		log.Printf("nutrition resolver: %v", err)
		return fallbackEntry(foodText)
	}

	var raw rawResolvedFood
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &raw); err != nil {
		log.Printf("nutrition resolver: bad JSON from model: %v", err)
		return fallbackEntry(foodText)
	}

	return raw.withDefaults(foodText)
}

func nutritionSystemPrompt() string {
	today := time.Now().Format("2006-01-02")
	return "Today is " + today + ". " +
		"You are a nutrition expert. Convert natural language food descriptions into structured JSON data.\n\n" +
		"IMPORTANT: Return ONLY valid JSON, no additional text, markdown, or formatting.\n\n" +
		"Expected JSON format:\n" +
		"{\n" +
		`    "food_name": "string - descriptive name of the food item",` + "\n" +
		`    "quantity": "string - amount consumed with units (e.g., 200g, 1 cup, 2 pieces)",` + "\n" +
		`    "calories": number - estimated calories (integer),` + "\n" +
		`    "protein": number - protein in grams (can be decimal),` + "\n" +
		`    "carbs": number - carbohydrates in grams (can be decimal),` + "\n" +
		`    "fats": number - fats in grams (can be decimal),` + "\n" +
		`    "fiber": number - fiber in grams (can be decimal),` + "\n" +
		`    "food_review": "string - brief nutritional assessment and health benefits",` + "\n" +
		`    "meal_type": "string - breakfast/lunch/dinner/snack/unknown"` + "\n" +
		"}\n\n" +
		"Guidelines:\n" +
		"- Provide realistic nutritional estimates based on standard food databases\n" +
		"- Be specific with food names (e.g., Fresh Strawberries not just Strawberries)\n" +
		"- If quantity is not specified, estimate a reasonable serving size\n" +
		"- Food review should be 1-2 sentences about nutritional value"
}

// rawResolvedFood keeps numeric fields as pointers so a field the
// model omitted can be told apart from an explicit zero.
type rawResolvedFood struct {
	FoodName   string   `json:"food_name"`
	Quantity   string   `json:"quantity"`
	Calories   *float64 `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fats       *float64 `json:"fats"`
	Fiber      *float64 `json:"fiber"`
	FoodReview string   `json:"food_review"`
	MealType   string   `json:"meal_type"`
}

// withDefaults fills omitted fields with the standing estimates. Values
// that are present pass through (rounded to one decimal); negatives are
// left for the entry model to clamp.
func (r *rawResolvedFood) withDefaults(foodText string) *ResolvedFood {
	out := &ResolvedFood{
		FoodName:     r.FoodName,
		Quantity:     r.Quantity,
		Calories:     numberOr(r.Calories, 200),
		Protein:      numberOr(r.Protein, 10),
		Carbs:        numberOr(r.Carbs, 20),
		Fats:         numberOr(r.Fats, 8),
		Fiber:        numberOr(r.Fiber, 3),
		FoodReview:   r.FoodReview,
		MealType:     r.MealType,
		OriginalText: foodText,
	}
	if out.FoodName == "" {
		out.FoodName = "Unknown Food Item"
	}
	if out.Quantity == "" {
		out.Quantity = "1 serving"
	}
	if out.FoodReview == "" {
		out.FoodReview = "Nutritional information estimated"
	}
	if out.MealType == "" {
		out.MealType = models.MealUnknown
	}
	return out
}

func numberOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fallback
	}
	return math.Round(*v*10) / 10
}

// fallbackEntry keeps logging usable when the resolver is unreachable.
func fallbackEntry(foodText string) *ResolvedFood {
	name := foodText
	if len(name) > 50 {
		name = name[:50] + "..."
	}
	return &ResolvedFood{
		FoodName:     "Food Entry: " + name,
		Quantity:     "1 serving",
		Calories:     200,
		Protein:      10,
		Carbs:        20,
		Fats:         8,
		Fiber:        3,
		FoodReview:   "Unable to process this food entry automatically. Nutritional values are estimates.",
		MealType:     models.MealUnknown,
		OriginalText: foodText,
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletion posts to {baseURL}/chat/completions and returns the
// first choice's content. Non-200 responses surface the upstream error
// body verbatim.
func (s *llmClient) chatCompletion(ctx context.Context, messages []chatMessage, temperature float64) (string, error) {
	body := map[string]any{
		"model":       s.model,
		"messages":    messages,
		"temperature": temperature,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ai response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode ai response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from ai model")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
