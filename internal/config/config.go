package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Restaurant RestaurantConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RestaurantConfig struct {
	Name string
}

type StorageConfig struct {
	// Backend selects the state store: file, redis, postgres or memory.
	Backend string
	// Key is the fixed key the state document lives under.
	Key string
	// FilePath is the state file location for the file backend.
	FilePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
}

func Load() *Config {
	// .env is optional; viper falls through to real env vars either way.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("RESTAURANT_NAME", "South Spice")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_KEY", "restaurant-storage")
	viper.SetDefault("STORAGE_FILE_PATH", "data/restaurant.json")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 300)

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Restaurant: RestaurantConfig{
			Name: viper.GetString("RESTAURANT_NAME"),
		},
		Storage: StorageConfig{
			Backend:  viper.GetString("STORAGE_BACKEND"),
			Key:      viper.GetString("STORAGE_KEY"),
			FilePath: viper.GetString("STORAGE_FILE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerMinute: viper.GetInt("RATE_LIMIT_REQUESTS_PER_MINUTE"),
		},
	}

	switch cfg.Storage.Backend {
	case "file", "redis", "postgres", "memory":
	default:
		log.Printf("Warning: unknown STORAGE_BACKEND %q, falling back to file", cfg.Storage.Backend)
		cfg.Storage.Backend = "file"
	}

	return cfg
}
