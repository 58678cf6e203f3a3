package models

import "gorm.io/gorm"

type ArticleTopic struct {
	gorm.Model
	Name  string
	Emoji string
}

type Article struct {
	gorm.Model
	TopicID         uint `gorm:"index"`
	Topic           ArticleTopic
	Title           string
	Content         string
	Sources         string
	Author          string
	PublicationDate string
}
