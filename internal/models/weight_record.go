package models

import "gorm.io/gorm"

// WeightRecord — замер веса. Повторный ввод за тот же день обновляет запись.
type WeightRecord struct {
	gorm.Model
	UserID int64  `gorm:"index"`
	Date   string `gorm:"index"` // YYYY-MM-DD
	Weight float64
}
