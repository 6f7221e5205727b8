package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// JWT Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"8h"`

	// Политика подтверждения инцидентов ("3+ уникальных репортера")
	ConfirmThreshold    int           `env:"CONFIRM_THRESHOLD" envDefault:"3"`
	ClusterRadiusMeters int           `env:"CLUSTER_RADIUS_METERS" envDefault:"200"`
	ReportCooldown      time.Duration `env:"REPORT_COOLDOWN" envDefault:"10m"`

	// Geocoder Config (OSM Nominatim)
	GeocoderBaseURL      string        `env:"GEOCODER_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderCountryCodes string        `env:"GEOCODER_COUNTRY_CODES" envDefault:"ca"`
	GeocoderUserAgent    string        `env:"GEOCODER_USER_AGENT" envDefault:"BridgeAid/1.0"`
	GeocoderTimeout      time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"12s"`
	GeocodeCacheTTL      time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"10m"`

	// Cache Config
	ConfirmedCacheTTL time.Duration `env:"CONFIRMED_CACHE_TTL" envDefault:"30s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTTTL:                 getEnvAsDuration("JWT_TTL", 8*time.Hour),
		ConfirmThreshold:       getEnvAsInt("CONFIRM_THRESHOLD", 3),
		ClusterRadiusMeters:    getEnvAsInt("CLUSTER_RADIUS_METERS", 200),
		ReportCooldown:         getEnvAsDuration("REPORT_COOLDOWN", 10*time.Minute),
		GeocoderBaseURL:        getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderCountryCodes:   getEnv("GEOCODER_COUNTRY_CODES", "ca"),
		GeocoderUserAgent:      getEnv("GEOCODER_USER_AGENT", "BridgeAid/1.0"),
		GeocoderTimeout:        getEnvAsDuration("GEOCODER_TIMEOUT", 12*time.Second),
		GeocodeCacheTTL:        getEnvAsDuration("GEOCODE_CACHE_TTL", 10*time.Minute),
		ConfirmedCacheTTL:      getEnvAsDuration("CONFIRMED_CACHE_TTL", 30*time.Second),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if cfg.ConfirmThreshold < 1 {
		return nil, fmt.Errorf("CONFIRM_THRESHOLD must be at least 1")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
