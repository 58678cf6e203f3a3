package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type WaterRepository interface {
	Create(entry *models.WaterEntry) (*models.WaterEntry, error)
	SumByUserAndDate(userID int64, date string) (int, error)
	SumByUserAndDates(userID int64, dates []string) (map[string]int, error)
}

type waterRepo struct {
	db *gorm.DB
}

func NewWaterRepo(db *gorm.DB) WaterRepository {
	return &waterRepo{db: db}
}

func (r *waterRepo) Create(entry *models.WaterEntry) (*models.WaterEntry, error) {
	err := r.db.Create(entry).Error
	return entry, err
}

func (r *waterRepo) SumByUserAndDate(userID int64, date string) (int, error) {
	var total int64
	err := r.db.Model(&models.WaterEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return int(total), err
}

// SumByUserAndDates возвращает суммы по каждому дню; дни без записей получают 0
func (r *waterRepo) SumByUserAndDates(userID int64, dates []string) (map[string]int, error) {
	type row struct {
		Date  string
		Total int
	}
	var rows []row
	err := r.db.Model(&models.WaterEntry{}).
		Where("user_id = ? AND date IN ?", userID, dates).
		Select("date, SUM(amount) as total").Group("date").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(dates))
	for _, d := range dates {
		result[d] = 0
	}
	for _, r := range rows {
		result[r.Date] = r.Total
	}
	return result, nil
}
