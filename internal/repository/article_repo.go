package repository

import (
	"github.com/AsyaBav/DietPlanner/internal/models"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	CreateTopic(topic *models.ArticleTopic) (*models.ArticleTopic, error)
	FindAllTopics() ([]*models.ArticleTopic, error)
	FindTopicByID(id uint) (*models.ArticleTopic, error)
	UpdateTopic(topic *models.ArticleTopic) error
	DeleteTopic(id uint) error

	Create(article *models.Article) (*models.Article, error)
	FindByID(id uint) (*models.Article, error)
	FindByTopic(topicID uint) ([]*models.Article, error)
	FindAll() ([]*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
}

type articleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) CreateTopic(topic *models.ArticleTopic) (*models.ArticleTopic, error) {
	err := r.db.Create(topic).Error
	return topic, err
}

func (r *articleRepo) FindAllTopics() ([]*models.ArticleTopic, error) {
	var topics []*models.ArticleTopic
	err := r.db.Order("id").Find(&topics).Error
	return topics, err
}

func (r *articleRepo) FindTopicByID(id uint) (*models.ArticleTopic, error) {
	var topic models.ArticleTopic
	err := r.db.First(&topic, id).Error
	return &topic, err
}

func (r *articleRepo) UpdateTopic(topic *models.ArticleTopic) error {
	return r.db.Save(topic).Error
}

func (r *articleRepo) DeleteTopic(id uint) error {
	return r.db.Delete(&models.ArticleTopic{}, id).Error
}

func (r *articleRepo) Create(article *models.Article) (*models.Article, error) {
	err := r.db.Create(article).Error
	return article, err
}

func (r *articleRepo) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepo) FindByTopic(topicID uint) ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.Where("topic_id = ?", topicID).Order("id").Find(&articles).Error
	return articles, err
}

func (r *articleRepo) FindAll() ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.Order("id").Find(&articles).Error
	return articles, err
}

func (r *articleRepo) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepo) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}
