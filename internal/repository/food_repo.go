package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(entry *models.FoodEntry) (*models.FoodEntry, error)
	FindByID(id uint) (*models.FoodEntry, error)
	FindByUserAndDate(userID int64, date string) ([]*models.FoodEntry, error)
	FindRecent(userID int64, limit int) ([]*models.FoodEntry, error)
	DeleteByUserAndDate(userID int64, date string) error
	CountByDate(date string) (int64, error)
}

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(entry *models.FoodEntry) (*models.FoodEntry, error) {
	err := r.db.Create(entry).Error
	return entry, err
}

func (r *foodRepo) FindByID(id uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.First(&entry, id).Error
	return &entry, err
}

func (r *foodRepo) FindByUserAndDate(userID int64, date string) ([]*models.FoodEntry, error) {
	var entries []*models.FoodEntry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at").Find(&entries).Error
	return entries, err
}

// FindRecent возвращает последние добавленные продукты без повторов по названию
func (r *foodRepo) FindRecent(userID int64, limit int) ([]*models.FoodEntry, error) {
	var entries []*models.FoodEntry
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit * 5).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []*models.FoodEntry
	for _, e := range entries {
		if seen[e.FoodName] {
			continue
		}
		seen[e.FoodName] = true
		result = append(result, e)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (r *foodRepo) DeleteByUserAndDate(userID int64, date string) error {
	return r.db.Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.FoodEntry{}).Error
}

func (r *foodRepo) CountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FoodEntry{}).Where("date = ?", date).Count(&count).Error
	return count, err
}
