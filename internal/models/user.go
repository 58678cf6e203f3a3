package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Name       string
	Age        int
	Gender     string
	Height     float64
	Weight     float64

	ActivityLevel string
	Goal          string

	// Рассчитанные цели
	GoalCalories float64
	Protein      int
	Fat          int
	Carbs        int

	WaterGoal int `gorm:"default:2000"`

	RegistrationComplete bool
}
