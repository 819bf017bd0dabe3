package services

import (
	"context"
	"errors"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodLogService owns the food-entry lifecycle: resolve, store, list,
// delete with undo, and the ledger/progress recompute that follows
// every mutation.
type FoodLogService struct {
	db       *gorm.DB
	resolver NutritionResolver
	goals    *GoalService
	undo     *UndoRegistry
	hub      *RealtimeHub // nil disables realtime push
}

func NewFoodLogService(db *gorm.DB, resolver NutritionResolver, goals *GoalService, undo *UndoRegistry, hub *RealtimeHub) *FoodLogService {
	return &FoodLogService{db: db, resolver: resolver, goals: goals, undo: undo, hub: hub}
}

// DaySummary is one date's ledger plus the derived progress view.
type DaySummary struct {
	Date     string         `json:"date"`
	Totals   DailyTotals    `json:"totals"`
	Progress ProgressView   `json:"progress"`
	Entries  []EntryDisplay `json:"entries,omitempty"`
}

// LogFood resolves a raw description and stores the resulting entry
// under the given date, then recomputes and broadcasts that day's
// summary.
func (s *FoodLogService) LogFood(ctx context.Context, userID uint, date time.Time, foodText string) (*models.FoodEntry, error) {
	resolved := s.resolver.Resolve(ctx, foodText)

	entry, err := NewFoodEntry(userID, date, resolved)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	s.broadcast(userID, entry.Date)
	return entry, nil
}

// ListEntries returns the entry set for one user+date, ordered by
// logging time within the day.
func (s *FoodLogService) ListEntries(userID uint, date time.Time) ([]models.FoodEntry, error) {
	start := DayStart(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("logged_at ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteEntry removes an entry, parking it in the user's undo buffer
// first so it can be restored for the next five minutes.
func (s *FoodLogService) DeleteEntry(userID uint, entryID string) error {
	var entry models.FoodEntry
	if err := s.db.
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}

	s.undo.For(userID).Push(entry)

	if err := s.db.Unscoped().Delete(&entry).Error; err != nil {
		return err
	}

	s.broadcast(userID, entry.Date)
	return nil
}

// RestoreLast re-inserts the most recently deleted entry. The restored
// row gets a fresh entry id; the original id left the backing store
// with the delete.
func (s *FoodLogService) RestoreLast(userID uint) (*models.FoodEntry, error) {
	entry, err := s.undo.For(userID).Pop()
	if err != nil {
		return nil, err
	}

	restored := entry
	restored.Model = gorm.Model{}
	restored.EntryID = uuid.NewString()
	if err := s.db.Create(&restored).Error; err != nil {
		return nil, err
	}

	s.broadcast(userID, restored.Date)
	return &restored, nil
}

// Summary recomputes the full day view: entry list, aggregated totals,
// and progress against the user's goals.
func (s *FoodLogService) Summary(userID uint, date time.Time) (*DaySummary, error) {
	entries, err := s.ListEntries(userID, date)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.Get(userID)
	if err != nil {
		return nil, err
	}

	totals := AggregateEntries(entries)
	displays := make([]EntryDisplay, 0, len(entries))
	for i := range entries {
		displays = append(displays, ToDisplay(&entries[i]))
	}

	return &DaySummary{
		Date:     DayStart(date).Format("2006-01-02"),
		Totals:   totals,
		Progress: ComputeProgress(totals, goal),
		Entries:  displays,
	}, nil
}

// History returns per-day summaries (without entry lists) for an
// inclusive date range, skipping days with no entries.
func (s *FoodLogService) History(userID uint, from, to time.Time) ([]DaySummary, error) {
	start := DayStart(from)
	end := DayStart(to).Add(24 * time.Hour)
	if !start.Before(end) {
		return nil, errors.New("'from' must not be after 'to'")
	}

	var entries []models.FoodEntry
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	goal, err := s.goals.Get(userID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.FoodEntry)
	var order []string
	for _, e := range entries {
		day := e.Date.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], e)
	}

	out := make([]DaySummary, 0, len(order))
	for _, day := range order {
		totals := AggregateEntries(byDay[day])
		out = append(out, DaySummary{
			Date:     day,
			Totals:   totals,
			Progress: ComputeProgress(totals, goal),
		})
	}
	return out, nil
}

func (s *FoodLogService) broadcast(userID uint, date time.Time) {
	if s.hub == nil {
		return
	}
	summary, err := s.Summary(userID, date)
	if err != nil {
		return
	}
	s.hub.BroadcastProgress(userID, summary)
}
