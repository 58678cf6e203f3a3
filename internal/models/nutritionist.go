package models

import "gorm.io/gorm"

// Nutritionist — карточка диетолога для раздела консультаций
type Nutritionist struct {
	gorm.Model
	FullName         string
	Education        string
	Experience       string
	Specialization   string
	Approach         string
	TelegramUsername string
	Email            string
	Phone            string
	WorkHours        string
	Price            string
}
