package service

import (
	"testing"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleService(t *testing.T) *ArticleService {
	return NewArticleService(repository.NewArticleRepo(setupTestDB(t)))
}

func TestCreateTopicAndArticle(t *testing.T) {
	svc := newArticleService(t)

	topic, err := svc.CreateTopic(CreateTopicDTO{Name: "Основы питания", Emoji: "🥗"})
	require.NoError(t, err)

	article, err := svc.CreateArticle(CreateArticleDTO{
		TopicID: topic.ID,
		Title:   "Зачем считать калории",
		Content: "Текст статьи",
		Author:  "Редакция",
	})
	require.NoError(t, err)

	// Дата публикации по умолчанию — сегодня
	assert.Equal(t, time.Now().Format("2006-01-02"), article.PublicationDate)

	list, err := svc.ListArticlesByTopic(topic.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateArticleValidation(t *testing.T) {
	svc := newArticleService(t)

	topic, err := svc.CreateTopic(CreateTopicDTO{Name: "Тема"})
	require.NoError(t, err)

	_, err = svc.CreateArticle(CreateArticleDTO{TopicID: topic.ID, Title: " ", Content: "х"})
	assert.Error(t, err)

	_, err = svc.CreateArticle(CreateArticleDTO{TopicID: topic.ID, Title: "Заголовок", Content: " "})
	assert.Error(t, err)

	// Несуществующая тема
	_, err = svc.CreateArticle(CreateArticleDTO{TopicID: 999, Title: "Заголовок", Content: "Текст"})
	assert.Error(t, err)

	_, err = svc.CreateTopic(CreateTopicDTO{Name: "  "})
	assert.Error(t, err)
}

func TestUpdateArticlePartial(t *testing.T) {
	svc := newArticleService(t)

	topic, err := svc.CreateTopic(CreateTopicDTO{Name: "Тема"})
	require.NoError(t, err)
	article, err := svc.CreateArticle(CreateArticleDTO{
		TopicID: topic.ID, Title: "Старый заголовок", Content: "Старый текст", Author: "Автор",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateArticle(article.ID, UpdateArticleDTO{Title: "Новый заголовок"})
	require.NoError(t, err)

	// Пустые поля не затирают существующие
	assert.Equal(t, "Новый заголовок", updated.Title)
	assert.Equal(t, "Старый текст", updated.Content)
	assert.Equal(t, "Автор", updated.Author)
}

func TestGetArticleNotFound(t *testing.T) {
	svc := newArticleService(t)

	article, err := svc.GetArticleByID(123)
	require.NoError(t, err)
	assert.Nil(t, article)

	topic, err := svc.GetTopicByID(123)
	require.NoError(t, err)
	assert.Nil(t, topic)
}
