package service

import (
	"testing"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiaryService(t *testing.T) *DiaryService {
	return NewDiaryService(repository.NewFoodRepo(setupTestDB(t)))
}

func TestAddEntryDefaultsToToday(t *testing.T) {
	svc := newDiaryService(t)

	entry, err := svc.AddEntry(AddFoodEntryDTO{
		UserID:   1,
		MealType: "Завтрак",
		FoodName: "Овсянка",
		Calories: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), entry.Date)
}

func TestAddEntryValidation(t *testing.T) {
	svc := newDiaryService(t)

	_, err := svc.AddEntry(AddFoodEntryDTO{UserID: 1, FoodName: "  ", Calories: 100})
	assert.Error(t, err)

	_, err = svc.AddEntry(AddFoodEntryDTO{UserID: 1, FoodName: "Яблоко", Calories: -5})
	assert.Error(t, err)
}

func TestGetDailyTotals(t *testing.T) {
	svc := newDiaryService(t)
	date := "2026-08-30"

	meals := []AddFoodEntryDTO{
		{UserID: 1, Date: date, MealType: "Завтрак", FoodName: "Овсянка", Calories: 300, Protein: 10, Fat: 5, Carbs: 50},
		{UserID: 1, Date: date, MealType: "Обед", FoodName: "Курица", Calories: 400, Protein: 40, Fat: 10, Carbs: 5},
		{UserID: 2, Date: date, MealType: "Обед", FoodName: "Чужая еда", Calories: 999},
	}
	for _, m := range meals {
		_, err := svc.AddEntry(m)
		require.NoError(t, err)
	}

	totals, err := svc.GetDailyTotals(1, date)
	require.NoError(t, err)
	assert.Equal(t, 700.0, totals.Calories)
	assert.Equal(t, 50.0, totals.Protein)
	assert.Equal(t, 15.0, totals.Fat)
	assert.Equal(t, 55.0, totals.Carbs)
}

func TestGetRecentFoodsDeduplicates(t *testing.T) {
	svc := newDiaryService(t)

	names := []string{"Овсянка", "Курица", "Овсянка", "Яблоко"}
	for _, n := range names {
		_, err := svc.AddEntry(AddFoodEntryDTO{UserID: 1, MealType: "Обед", FoodName: n, Calories: 100})
		require.NoError(t, err)
	}

	recent, err := svc.GetRecentFoods(1, 10)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, e := range recent {
		seen[e.FoodName]++
	}
	assert.Len(t, seen, 3)
	for name, count := range seen {
		assert.Equal(t, 1, count, name)
	}
}

func TestClearDay(t *testing.T) {
	svc := newDiaryService(t)
	date := "2026-08-30"

	_, err := svc.AddEntry(AddFoodEntryDTO{UserID: 1, Date: date, MealType: "Ужин", FoodName: "Рыба", Calories: 250})
	require.NoError(t, err)
	_, err = svc.AddEntry(AddFoodEntryDTO{UserID: 1, Date: "2026-08-29", MealType: "Ужин", FoodName: "Суп", Calories: 150})
	require.NoError(t, err)

	require.NoError(t, svc.ClearDay(1, date))

	entries, err := svc.GetDailyEntries(1, date)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Другой день не затронут
	entries, err = svc.GetDailyEntries(1, "2026-08-29")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetWeeklyCalories(t *testing.T) {
	svc := newDiaryService(t)

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := svc.AddEntry(AddFoodEntryDTO{UserID: 1, Date: today, MealType: "Обед", FoodName: "А", Calories: 500})
	require.NoError(t, err)
	_, err = svc.AddEntry(AddFoodEntryDTO{UserID: 1, Date: yesterday, MealType: "Обед", FoodName: "Б", Calories: 300})
	require.NoError(t, err)

	week, err := svc.GetWeeklyCalories(1)
	require.NoError(t, err)
	require.Len(t, week, 7)

	// От старых к новым, сегодня — последний
	assert.Equal(t, today, week[6].Date)
	assert.Equal(t, 500.0, week[6].Calories)
	assert.Equal(t, 300.0, week[5].Calories)
	assert.Equal(t, 0.0, week[0].Calories)
}

func TestGetEntryByIDNotFound(t *testing.T) {
	svc := newDiaryService(t)

	entry, err := svc.GetEntryByID(12345)
	require.NoError(t, err)
	assert.Nil(t, entry)
}
