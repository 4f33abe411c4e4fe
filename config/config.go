package config

import (
	"claimdesk/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Port        int

	DatabaseDbPath       string
	DatabaseCacheAddress string
	DatabaseCachePort    int

	DashboardCacheTTLSeconds int
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DATABASE_DB_PATH", "data/claimdesk.db")
	viper.SetDefault("DATABASE_CACHE_ADDRESS", "localhost")
	viper.SetDefault("DATABASE_CACHE_PORT", 6379)
	viper.SetDefault("DASHBOARD_CACHE_TTL_SECONDS", 60)

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Info("No .env file found, using environment variables and defaults")
	}

	config := Config{
		Environment:              viper.GetString("ENVIRONMENT"),
		Port:                     viper.GetInt("PORT"),
		DatabaseDbPath:           viper.GetString("DATABASE_DB_PATH"),
		DatabaseCacheAddress:     viper.GetString("DATABASE_CACHE_ADDRESS"),
		DatabaseCachePort:        viper.GetInt("DATABASE_CACHE_PORT"),
		DashboardCacheTTLSeconds: viper.GetInt("DASHBOARD_CACHE_TTL_SECONDS"),
	}

	log.Info("Config initialized", "environment", config.Environment, "port", config.Port)

	return config, nil
}
