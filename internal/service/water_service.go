package service

import (
	"fmt"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
)

type WaterService struct {
	repo repository.WaterRepository
}

// WaterDayStat — выпитая вода за один день недельной статистики
type WaterDayStat struct {
	Date   string
	Amount int
}

// WaterWeekStats — статистика воды за 7 дней
type WaterWeekStats struct {
	Days         []WaterDayStat
	Total        int
	DailyAverage float64
	DaysAchieved int
}

func NewWaterService(repo repository.WaterRepository) *WaterService {
	return &WaterService{repo: repo}
}

// AddWater добавляет порцию воды. За один раз можно не более 3000 мл.
func (s *WaterService) AddWater(userID int64, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("количество должно быть положительным")
	}
	if amount > 3000 {
		return fmt.Errorf("слишком большое количество для одного раза, введите не более 3000 мл")
	}

	_, err := s.repo.Create(&models.WaterEntry{
		UserID: userID,
		Date:   time.Now().Format("2006-01-02"),
		Amount: amount,
	})
	return err
}

// GetDailyWater возвращает сумму выпитого за день
func (s *WaterService) GetDailyWater(userID int64, date string) (int, error) {
	return s.repo.SumByUserAndDate(userID, date)
}

// GetWeekStats считает статистику за последние 7 дней
func (s *WaterService) GetWeekStats(userID int64, waterGoal int) (*WaterWeekStats, error) {
	dates := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		dates = append(dates, time.Now().AddDate(0, 0, -i).Format("2006-01-02"))
	}

	sums, err := s.repo.SumByUserAndDates(userID, dates)
	if err != nil {
		return nil, err
	}

	stats := &WaterWeekStats{}
	for _, d := range dates {
		amount := sums[d]
		stats.Days = append(stats.Days, WaterDayStat{Date: d, Amount: amount})
		stats.Total += amount
		if waterGoal > 0 && amount >= waterGoal {
			stats.DaysAchieved++
		}
	}
	stats.DailyAverage = float64(stats.Total) / 7

	return stats, nil
}
