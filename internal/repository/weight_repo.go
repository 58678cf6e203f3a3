package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type WeightRepository interface {
	Create(record *models.WeightRecord) (*models.WeightRecord, error)
	FindByUserAndDate(userID int64, date string) (*models.WeightRecord, error)
	FindHistory(userID int64, limit int) ([]*models.WeightRecord, error)
	Update(record *models.WeightRecord) error
}

type weightRepo struct {
	db *gorm.DB
}

func NewWeightRepo(db *gorm.DB) WeightRepository {
	return &weightRepo{db: db}
}

func (r *weightRepo) Create(record *models.WeightRecord) (*models.WeightRecord, error) {
	err := r.db.Create(record).Error
	return record, err
}

func (r *weightRepo) FindByUserAndDate(userID int64, date string) (*models.WeightRecord, error) {
	var record models.WeightRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	return &record, err
}

// FindHistory возвращает записи от новых к старым
func (r *weightRepo) FindHistory(userID int64, limit int) ([]*models.WeightRecord, error) {
	var records []*models.WeightRecord
	q := r.db.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&records).Error
	return records, err
}

func (r *weightRepo) Update(record *models.WeightRecord) error {
	return r.db.Save(record).Error
}
