package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type NutritionistRepository interface {
	Create(n *models.Nutritionist) (*models.Nutritionist, error)
	FindByID(id uint) (*models.Nutritionist, error)
	FindAll() ([]*models.Nutritionist, error)
	Update(n *models.Nutritionist) error
	Delete(id uint) error
}

type nutritionistRepo struct {
	db *gorm.DB
}

func NewNutritionistRepo(db *gorm.DB) NutritionistRepository {
	return &nutritionistRepo{db: db}
}

func (r *nutritionistRepo) Create(n *models.Nutritionist) (*models.Nutritionist, error) {
	err := r.db.Create(n).Error
	return n, err
}

func (r *nutritionistRepo) FindByID(id uint) (*models.Nutritionist, error) {
	var n models.Nutritionist
	err := r.db.First(&n, id).Error
	return &n, err
}

func (r *nutritionistRepo) FindAll() ([]*models.Nutritionist, error) {
	var list []*models.Nutritionist
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *nutritionistRepo) Update(n *models.Nutritionist) error {
	return r.db.Save(n).Error
}

func (r *nutritionistRepo) Delete(id uint) error {
	return r.db.Delete(&models.Nutritionist{}, id).Error
}
