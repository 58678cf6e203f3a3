package models

import "gorm.io/gorm"

// MealPlanEntry — блюдо в плане питания на день.
// На один прием пищи в день хранится не больше одной записи.
type MealPlanEntry struct {
	gorm.Model
	UserID   int64  `gorm:"index"`
	Date     string `gorm:"index"` // YYYY-MM-DD
	MealType string
	RecipeID uint
	Recipe   Recipe
}
