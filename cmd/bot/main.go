package main

import (
	"os"

	"github.com/AsyaBav/DietPlanner/internal/bot"
	"github.com/AsyaBav/DietPlanner/internal/config"
	"github.com/AsyaBav/DietPlanner/internal/database"
	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/AsyaBav/DietPlanner/internal/nutrition"
	"github.com/AsyaBav/DietPlanner/internal/repository"
	"github.com/AsyaBav/DietPlanner/internal/service"
	"github.com/AsyaBav/DietPlanner/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.Log.Error("Failed to load config: " + err.Error())
		os.Exit(1)
	}
	if cfg.TelegramToken == "" {
		utils.Log.Error("TELEGRAM_TOKEN not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewSQLite(cfg.DatabasePath)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	// Выполнение миграций для ВСЕХ моделей
	if err := database.AutoMigrateTables(db,
		&models.User{},
		&models.FoodEntry{},
		&models.WaterEntry{},
		&models.Recipe{},
		&models.MealPlanEntry{},
		&models.WeightRecord{},
		&models.ShoppingCartItem{},
		&models.ArticleTopic{},
		&models.Article{},
		&models.Nutritionist{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	userRepo := repository.NewUserRepo(db)
	foodRepo := repository.NewFoodRepo(db)
	waterRepo := repository.NewWaterRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	planRepo := repository.NewPlanRepo(db)
	weightRepo := repository.NewWeightRepo(db)
	cartRepo := repository.NewCartRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	nutritionistRepo := repository.NewNutritionistRepo(db)

	// -----------------------
	// SERVICES
	services := bot.Services{
		User:         service.NewUserService(userRepo),
		Diary:        service.NewDiaryService(foodRepo),
		Water:        service.NewWaterService(waterRepo),
		Recipe:       service.NewRecipeService(recipeRepo),
		Planner:      service.NewPlannerService(planRepo, recipeRepo),
		Cart:         service.NewCartService(cartRepo, planRepo, foodRepo),
		Weight:       service.NewWeightService(weightRepo),
		Article:      service.NewArticleService(articleRepo),
		Consultation: service.NewConsultationService(nutritionistRepo),
		Nutrition:    nutrition.NewClient(cfg.NutritionixAppID, cfg.NutritionixAPIKey),
	}

	// -----------------------
	// BOT
	adminIDs := bot.ParseAdminIDs(cfg.AdminIDs)

	botApp, err := bot.NewBotApp(cfg.TelegramToken, services, adminIDs)
	if err != nil {
		utils.Log.Error("Failed to create bot: " + err.Error())
		os.Exit(1)
	}

	utils.Log.Info("Telegram bot starting...")
	botApp.Run()
}
