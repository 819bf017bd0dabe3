package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/stretchr/testify/assert"
)

func testResolver(t *testing.T, modelReply string) (*NutritionService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": modelReply}},
			},
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)

	return &NutritionService{llmClient: llmClient{
		client:  srv.Client(),
		baseURL: srv.URL,
		token:   "test-token",
		model:   "test-model",
	}}, srv
}

func TestResolveParsesModelJSON(t *testing.T) {
	svc, _ := testResolver(t, `{"food_name":"Oatmeal with Banana","quantity":"1 bowl","calories":290,"protein":8.4,"carbs":54,"fats":5,"fiber":7,"food_review":"Good fiber.","meal_type":"breakfast"}`)

	got := svc.Resolve(context.Background(), "oatmeal with a banana")
	assert.Equal(t, "Oatmeal with Banana", got.FoodName)
	assert.Equal(t, 290.0, got.Calories)
	assert.Equal(t, 8.4, got.Protein)
	assert.Equal(t, models.MealBreakfast, got.MealType)
	assert.Equal(t, "oatmeal with a banana", got.OriginalText)
}

func TestResolveStripsMarkdownFences(t *testing.T) {
	svc, _ := testResolver(t, "```json\n{\"food_name\":\"Apple\",\"calories\":95}\n```")

	got := svc.Resolve(context.Background(), "an apple")
	assert.Equal(t, "Apple", got.FoodName)
	assert.Equal(t, 95.0, got.Calories)
	// omitted fields pick up the standing estimates
	assert.Equal(t, 10.0, got.Protein)
	assert.Equal(t, "1 serving", got.Quantity)
	assert.Equal(t, models.MealUnknown, got.MealType)
}

func TestResolveFallsBackOnGarbage(t *testing.T) {
	svc, _ := testResolver(t, "Sorry, I can't help with that.")

	got := svc.Resolve(context.Background(), "mystery stew")
	assert.Contains(t, got.FoodName, "mystery stew")
	assert.Equal(t, 200.0, got.Calories)
	assert.Equal(t, "1 serving", got.Quantity)
}

func TestResolveFallsBackWithoutToken(t *testing.T) {
	svc := &NutritionService{llmClient: llmClient{
		client: &http.Client{Timeout: time.Second},
	}}

	got := svc.Resolve(context.Background(), "toast")
	assert.Contains(t, got.FoodName, "toast")
	assert.Equal(t, 3.0, got.Fiber)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
