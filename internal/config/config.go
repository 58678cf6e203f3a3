package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config — настройки приложения из переменных окружения
type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"diet_planner.db"`

	NutritionixAppID  string `envconfig:"NUTRITIONIX_APP_ID"`
	NutritionixAPIKey string `envconfig:"NUTRITIONIX_API_KEY"`

	AdminIDs string `envconfig:"ADMIN_IDS"`

	AdminAddr string `envconfig:"ADMIN_ADDR" default:":8080"`
	AdminKey  string `envconfig:"ADMIN_KEY"`
}

// Load читает конфигурацию из окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
