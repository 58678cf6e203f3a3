package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"gorm.io/gorm"
)

type ArticleService struct {
	repo repository.ArticleRepository
}

func NewArticleService(repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{repo: repo}
}

// ==================== Темы ====================

func (s *ArticleService) CreateTopic(dto CreateTopicDTO) (*models.ArticleTopic, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, fmt.Errorf("название темы не может быть пустым")
	}

	return s.repo.CreateTopic(&models.ArticleTopic{
		Name:  name,
		Emoji: strings.TrimSpace(dto.Emoji),
	})
}

func (s *ArticleService) ListTopics() ([]*models.ArticleTopic, error) {
	return s.repo.FindAllTopics()
}

// GetTopicByID возвращает nil без ошибки, если тема не найдена
func (s *ArticleService) GetTopicByID(id uint) (*models.ArticleTopic, error) {
	topic, err := s.repo.FindTopicByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *ArticleService) DeleteTopic(id uint) error {
	return s.repo.DeleteTopic(id)
}

// ==================== Статьи ====================

func (s *ArticleService) CreateArticle(dto CreateArticleDTO) (*models.Article, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, fmt.Errorf("заголовок статьи не может быть пустым")
	}
	if strings.TrimSpace(dto.Content) == "" {
		return nil, fmt.Errorf("текст статьи не может быть пустым")
	}
	if _, err := s.repo.FindTopicByID(dto.TopicID); err != nil {
		return nil, fmt.Errorf("тема не найдена: %w", err)
	}

	pubDate := strings.TrimSpace(dto.PublicationDate)
	if pubDate == "" {
		pubDate = time.Now().Format("2006-01-02")
	}

	return s.repo.Create(&models.Article{
		TopicID:         dto.TopicID,
		Title:           title,
		Content:         dto.Content,
		Sources:         dto.Sources,
		Author:          dto.Author,
		PublicationDate: pubDate,
	})
}

// GetArticleByID возвращает nil без ошибки, если статья не найдена
func (s *ArticleService) GetArticleByID(id uint) (*models.Article, error) {
	article, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) ListArticlesByTopic(topicID uint) ([]*models.Article, error) {
	return s.repo.FindByTopic(topicID)
}

func (s *ArticleService) ListArticles() ([]*models.Article, error) {
	return s.repo.FindAll()
}

func (s *ArticleService) UpdateArticle(id uint, dto UpdateArticleDTO) (*models.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(dto.Title); title != "" {
		article.Title = title
	}
	if strings.TrimSpace(dto.Content) != "" {
		article.Content = dto.Content
	}
	if dto.TopicID != 0 {
		if _, err := s.repo.FindTopicByID(dto.TopicID); err != nil {
			return nil, fmt.Errorf("тема не найдена: %w", err)
		}
		article.TopicID = dto.TopicID
	}
	if dto.Sources != "" {
		article.Sources = dto.Sources
	}
	if dto.Author != "" {
		article.Author = dto.Author
	}
	if dto.PublicationDate != "" {
		article.PublicationDate = dto.PublicationDate
	}

	return article, s.repo.Update(article)
}

func (s *ArticleService) DeleteArticle(id uint) error {
	return s.repo.Delete(id)
}
