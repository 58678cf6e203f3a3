package models

import "gorm.io/gorm"

type ShoppingCartItem struct {
	gorm.Model
	UserID      int64 `gorm:"index"`
	ProductName string
	Quantity    float64
	Unit        string
	Period      string // "на сегодня", "на 3 дн." и т.п.
	IsPurchased bool
}
