package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(entry *models.MealPlanEntry) (*models.MealPlanEntry, error)
	FindByUserAndDate(userID int64, date string) ([]*models.MealPlanEntry, error)
	DeleteByUserDateAndMeal(userID int64, date, mealType string) error
	DeleteByUserAndDate(userID int64, date string) error
}

type planRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(entry *models.MealPlanEntry) (*models.MealPlanEntry, error) {
	err := r.db.Create(entry).Error
	return entry, err
}

func (r *planRepo) FindByUserAndDate(userID int64, date string) ([]*models.MealPlanEntry, error) {
	var entries []*models.MealPlanEntry
	err := r.db.Preload("Recipe").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	return entries, err
}

func (r *planRepo) DeleteByUserDateAndMeal(userID int64, date, mealType string) error {
	return r.db.Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		Delete(&models.MealPlanEntry{}).Error
}

func (r *planRepo) DeleteByUserAndDate(userID int64, date string) error {
	return r.db.Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.MealPlanEntry{}).Error
}
