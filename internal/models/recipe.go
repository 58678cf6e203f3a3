package models

import "gorm.io/gorm"

// Recipe — рецепт пользователя. Ингредиенты хранятся текстом,
// каждый ингредиент с новой строки.
type Recipe struct {
	gorm.Model
	UserID       int64 `gorm:"index"`
	Name         string
	Ingredients  string
	Instructions string
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
	IsFavorite   bool
}
