package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	FindByUser(userID int64) ([]*models.Recipe, error)
	FindFavorites(userID int64) ([]*models.Recipe, error)
	SearchByName(userID int64, query string) ([]*models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
	CountByUser(userID int64) (int64, error)
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	err := r.db.Create(recipe).Error
	return recipe, err
}

func (r *recipeRepo) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepo) FindByUser(userID int64) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) FindFavorites(userID int64) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("name").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) SearchByName(userID int64, query string) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.Where("user_id = ? AND name LIKE ?", userID, "%"+query+"%").
		Order("name").Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

func (r *recipeRepo) Delete(id uint) error {
	return r.db.Delete(&models.Recipe{}, id).Error
}

func (r *recipeRepo) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
