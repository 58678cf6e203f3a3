package models

import "gorm.io/gorm"

type WaterEntry struct {
	gorm.Model
	UserID int64  `gorm:"index"`
	Date   string `gorm:"index"` // YYYY-MM-DD
	Amount int    // мл
}
