package service

import (
	"fmt"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
)

type WeightService struct {
	repo repository.WeightRepository
}

// WeightHistoryPoint — запись веса с изменением к предыдущему замеру
type WeightHistoryPoint struct {
	Date   string
	Weight float64
	Delta  float64
}

// WeightReport — сводка для отчета о прогрессе
type WeightReport struct {
	Points      []WeightHistoryPoint
	FirstWeight float64
	LastWeight  float64
	TotalDelta  float64
}

func NewWeightService(repo repository.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// RecordWeight сохраняет замер веса на сегодня.
// Повторный замер за тот же день обновляет существующую запись.
func (s *WeightService) RecordWeight(userID int64, weight float64) (*models.WeightRecord, error) {
	if weight < 20 || weight > 300 {
		return nil, fmt.Errorf("вес должен быть от 20 до 300 кг")
	}

	date := time.Now().Format("2006-01-02")
	existing, err := s.repo.FindByUserAndDate(userID, date)
	if err == nil && existing != nil {
		existing.Weight = weight
		return existing, s.repo.Update(existing)
	}

	return s.repo.Create(&models.WeightRecord{
		UserID: userID,
		Date:   date,
		Weight: weight,
	})
}

// GetHistory возвращает последние замеры от новых к старым
func (s *WeightService) GetHistory(userID int64, limit int) ([]*models.WeightRecord, error) {
	return s.repo.FindHistory(userID, limit)
}

// GetReport строит отчет: замеры от старых к новым с изменениями
// между соседними записями и общей динамикой
func (s *WeightService) GetReport(userID int64, limit int) (*WeightReport, error) {
	records, err := s.repo.FindHistory(userID, limit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &WeightReport{}, nil
	}

	// История хранится от новых к старым, отчет строим в хронологии
	report := &WeightReport{}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		point := WeightHistoryPoint{Date: r.Date, Weight: r.Weight}
		if n := len(report.Points); n > 0 {
			point.Delta = r.Weight - report.Points[n-1].Weight
		}
		report.Points = append(report.Points, point)
	}

	report.FirstWeight = report.Points[0].Weight
	report.LastWeight = report.Points[len(report.Points)-1].Weight
	report.TotalDelta = report.LastWeight - report.FirstWeight

	return report, nil
}
