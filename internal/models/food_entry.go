package models

import "gorm.io/gorm"

// FoodEntry — запись дневника питания за конкретный день
type FoodEntry struct {
	gorm.Model
	UserID   int64  `gorm:"index"`
	Date     string `gorm:"index"` // YYYY-MM-DD
	MealType string
	FoodName string
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Weight   float64 // граммы
}
