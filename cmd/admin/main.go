package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AsyaBav/DietPlanner/internal/admin"
	"github.com/AsyaBav/DietPlanner/internal/config"
	"github.com/AsyaBav/DietPlanner/internal/database"
	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Подключение к базе
	db, err := database.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	// Авто-миграция
	if err := database.AutoMigrateTables(db,
		&models.User{},
		&models.FoodEntry{},
		&models.ArticleTopic{},
		&models.Article{},
		&models.Nutritionist{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Репозитории и сервисы
	userRepo := repository.NewUserRepo(db)
	foodRepo := repository.NewFoodRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	nutritionistRepo := repository.NewNutritionistRepo(db)

	handlers := admin.NewHandlers(
		service.NewArticleService(articleRepo),
		service.NewConsultationService(nutritionistRepo),
		service.NewUserService(userRepo),
		service.NewDiaryService(foodRepo),
	)

	// Gin router
	router := gin.Default()
	admin.SetupRoutes(router, handlers, cfg.AdminKey)

	log.Println("Admin panel starting on " + cfg.AdminAddr)
	if err := router.Run(cfg.AdminAddr); err != nil {
		log.Fatal("Failed to run admin panel:", err)
	}
}
