package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(item *models.ShoppingCartItem) (*models.ShoppingCartItem, error)
	FindByID(id uint) (*models.ShoppingCartItem, error)
	FindByUser(userID int64) ([]*models.ShoppingCartItem, error)
	Update(item *models.ShoppingCartItem) error
	Delete(id uint) error
	DeleteByUser(userID int64) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Create(item *models.ShoppingCartItem) (*models.ShoppingCartItem, error) {
	err := r.db.Create(item).Error
	return item, err
}

func (r *cartRepo) FindByID(id uint) (*models.ShoppingCartItem, error) {
	var item models.ShoppingCartItem
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *cartRepo) FindByUser(userID int64) ([]*models.ShoppingCartItem, error) {
	var items []*models.ShoppingCartItem
	err := r.db.Where("user_id = ?", userID).
		Order("is_purchased, product_name").Find(&items).Error
	return items, err
}

func (r *cartRepo) Update(item *models.ShoppingCartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) Delete(id uint) error {
	return r.db.Delete(&models.ShoppingCartItem{}, id).Error
}

func (r *cartRepo) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.ShoppingCartItem{}).Error
}
