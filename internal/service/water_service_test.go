package service

import (
	"testing"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaterService(t *testing.T) *WaterService {
	return NewWaterService(repository.NewWaterRepo(setupTestDB(t)))
}

func TestAddWaterValidation(t *testing.T) {
	svc := newWaterService(t)

	assert.Error(t, svc.AddWater(1, 0))
	assert.Error(t, svc.AddWater(1, -100))
	assert.Error(t, svc.AddWater(1, 3001))
	assert.NoError(t, svc.AddWater(1, 3000))
}

func TestGetDailyWaterSumsEntries(t *testing.T) {
	svc := newWaterService(t)

	require.NoError(t, svc.AddWater(1, 200))
	require.NoError(t, svc.AddWater(1, 300))
	require.NoError(t, svc.AddWater(2, 500))

	total, err := svc.GetDailyWater(1, time.Now().Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, 500, total)

	// Пустой день — ноль без ошибки
	total, err = svc.GetDailyWater(1, "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestGetWeekStats(t *testing.T) {
	svc := newWaterService(t)

	require.NoError(t, svc.AddWater(1, 1500))
	require.NoError(t, svc.AddWater(1, 700))

	stats, err := svc.GetWeekStats(1, 2000)
	require.NoError(t, err)

	require.Len(t, stats.Days, 7)
	assert.Equal(t, 2200, stats.Total)
	assert.InDelta(t, 2200.0/7, stats.DailyAverage, 0.01)
	assert.Equal(t, 1, stats.DaysAchieved)

	// Сегодня — последний день списка
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, stats.Days[6].Date)
	assert.Equal(t, 2200, stats.Days[6].Amount)
}
