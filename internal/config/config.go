package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы хранилища кэша
const (
	CacheDriverSQLite   = "sqlite"
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	BackendURL   string `env:"BACKEND_URL"`
	SessionToken string `env:"SESSION_TOKEN"`
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8085"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	// Cache Config
	CacheDriver string        `env:"CACHE_DRIVER" envDefault:"sqlite"`
	CachePath   string        `env:"CACHE_PATH" envDefault:"data/alert_sync.db"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	DatabaseURL string        `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Poll Config
	AlertsPollInterval        time.Duration `env:"ALERTS_POLL_INTERVAL" envDefault:"30s"`
	NotificationsPollInterval time.Duration `env:"NOTIFICATIONS_POLL_INTERVAL" envDefault:"30s"`
	ProfessionalsPollInterval time.Duration `env:"PROFESSIONALS_POLL_INTERVAL" envDefault:"5s"`
	DashboardPollInterval     time.Duration `env:"DASHBOARD_POLL_INTERVAL" envDefault:"300s"`

	// Retry Config
	RetryMax   int           `env:"RETRY_MAX" envDefault:"3"`
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"5s"`

	// Таймаут HTTP-клиента для вызовов бэкенда
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// AdminMode включает опрос административного списка специалистов
	AdminMode bool `env:"ADMIN_MODE" envDefault:"false"`

	// API Keys for local consumer authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		BackendURL:                os.Getenv("BACKEND_URL"),
		SessionToken:              os.Getenv("SESSION_TOKEN"),
		HTTPPort:                  getEnv("HTTP_PORT", "8085"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		CacheDriver:               getEnv("CACHE_DRIVER", CacheDriverSQLite),
		CachePath:                 getEnv("CACHE_PATH", "data/alert_sync.db"),
		CacheTTL:                  getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		RedisDB:                   getEnvAsInt("REDIS_DB", 0),
		AlertsPollInterval:        getEnvAsDuration("ALERTS_POLL_INTERVAL", 30*time.Second),
		NotificationsPollInterval: getEnvAsDuration("NOTIFICATIONS_POLL_INTERVAL", 30*time.Second),
		ProfessionalsPollInterval: getEnvAsDuration("PROFESSIONALS_POLL_INTERVAL", 5*time.Second),
		DashboardPollInterval:     getEnvAsDuration("DASHBOARD_POLL_INTERVAL", 300*time.Second),
		RetryMax:                  getEnvAsInt("RETRY_MAX", 3),
		RetryDelay:                getEnvAsDuration("RETRY_DELAY", 5*time.Second),
		BackendTimeout:            getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		AdminMode:                 getEnvAsBool("ADMIN_MODE", false),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is required")
	}

	switch cfg.CacheDriver {
	case CacheDriverSQLite, CacheDriverRedis, CacheDriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported CACHE_DRIVER: %s", cfg.CacheDriver)
	}

	if cfg.CacheDriver == CacheDriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required for postgres cache driver")
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

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
