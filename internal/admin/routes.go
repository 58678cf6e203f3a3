package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers содержит зависимости от сервисов
type Handlers struct {
	articleService      *service.ArticleService
	consultationService *service.ConsultationService
	userService         *service.UserService
	diaryService        *service.DiaryService
}

func NewHandlers(
	articleService *service.ArticleService,
	consultationService *service.ConsultationService,
	userService *service.UserService,
	diaryService *service.DiaryService,
) *Handlers {
	return &Handlers{
		articleService:      articleService,
		consultationService: consultationService,
		userService:         userService,
		diaryService:        diaryService,
	}
}

// SetupRoutes регистрирует REST-маршруты панели управления контентом
func SetupRoutes(r *gin.Engine, h *Handlers, adminKey string) {
	api := r.Group("/api")
	api.Use(AuthMiddleware(adminKey))

	// Темы статей
	api.GET("/topics", h.ListTopics)
	api.POST("/topics", h.CreateTopic)
	api.DELETE("/topics/:id", h.DeleteTopic)

	// Статьи
	api.GET("/articles", h.ListArticles)
	api.GET("/articles/:id", h.GetArticle)
	api.POST("/articles", h.CreateArticle)
	api.PUT("/articles/:id", h.UpdateArticle)
	api.DELETE("/articles/:id", h.DeleteArticle)

	// Диетологи
	api.GET("/nutritionists", h.ListNutritionists)
	api.POST("/nutritionists", h.CreateNutritionist)
	api.PUT("/nutritionists/:id", h.UpdateNutritionist)
	api.DELETE("/nutritionists/:id", h.DeleteNutritionist)

	// Пользователи и сводка
	api.GET("/users", h.ListUsers)
	api.GET("/stats", h.Stats)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ==================== Темы ====================

func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.articleService.ListTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handlers) CreateTopic(c *gin.Context) {
	var input service.CreateTopicDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.articleService.CreateTopic(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (h *Handlers) DeleteTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.articleService.DeleteTopic(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ==================== Статьи ====================

func (h *Handlers) ListArticles(c *gin.Context) {
	// Необязательный фильтр по теме
	if topicParam := c.Query("topic_id"); topicParam != "" {
		topicID, err := strconv.ParseUint(topicParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
			return
		}
		articles, err := h.articleService.ListArticlesByTopic(uint(topicID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, articles)
		return
	}

	articles, err := h.articleService.ListArticles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *Handlers) GetArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := h.articleService.GetArticleByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handlers) CreateArticle(c *gin.Context) {
	var input service.CreateArticleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *Handlers) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UpdateArticleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.UpdateArticle(id, input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.articleService.DeleteArticle(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ==================== Диетологи ====================

func (h *Handlers) ListNutritionists(c *gin.Context) {
	list, err := h.consultationService.ListNutritionists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handlers) CreateNutritionist(c *gin.Context) {
	var input service.CreateNutritionistDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.consultationService.CreateNutritionist(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handlers) UpdateNutritionist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UpdateNutritionistDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.consultationService.UpdateNutritionist(id, input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handlers) DeleteNutritionist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.consultationService.DeleteNutritionist(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ==================== Пользователи и сводка ====================

func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handlers) Stats(c *gin.Context) {
	users, err := h.userService.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	entries, err := h.diaryService.CountEntriesByDate(today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":               users,
		"diary_entries_today": entries,
	})
}
