package service

import (
	"testing"

	"github.com/AsyaBav/DietPlanner/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Отдельная in-memory база на каждый тест
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))

	return db
}
