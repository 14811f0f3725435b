package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port        string
	Environment string
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Session     SessionConfig
	Checkout    CheckoutConfig
	Log         LogConfig
	Language    string
}

type StorageConfig struct {
	Backend string
	FileDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// KafkaConfig enables event publishing when Brokers is non-empty
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SessionConfig controls how long idle sessions stay loaded in memory
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type CheckoutConfig struct {
	ProcessingDelay       time.Duration
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORAGE_BACKEND", StorageMemory)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnvOrViper("STORAGE_BACKEND", StorageMemory)),
			FileDir: getEnvOrViper("STORAGE_FILE_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "storefront"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnvOrViper("KAFKA_BROKERS", "")),
			Topic:   getEnvOrViper("KAFKA_TOPIC", "storefront.events"),
		},
		Log: LogConfig{
			Level: getEnvOrViper("LOG_LEVEL", "info"),
			File:  getEnvOrViper("LOG_FILE", ""),
		},
		Language: getEnvOrViper("DEFAULT_LANGUAGE", "sk"),
	}

	var err error
	if cfg.Redis.DB, err = strconv.Atoi(getEnvOrViper("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
	}
	if cfg.Redis.SessionTTL, err = time.ParseDuration(getEnvOrViper("REDIS_SESSION_TTL", "0s")); err != nil {
		return nil, fmt.Errorf("REDIS_SESSION_TTL must be a duration: %w", err)
	}
	if cfg.Log.MaxSizeMB, err = strconv.Atoi(getEnvOrViper("LOG_MAX_SIZE_MB", "100")); err != nil {
		return nil, fmt.Errorf("LOG_MAX_SIZE_MB must be an integer: %w", err)
	}
	if cfg.Log.MaxBackups, err = strconv.Atoi(getEnvOrViper("LOG_MAX_BACKUPS", "5")); err != nil {
		return nil, fmt.Errorf("LOG_MAX_BACKUPS must be an integer: %w", err)
	}
	if cfg.Session.IdleTTL, err = time.ParseDuration(getEnvOrViper("SESSION_IDLE_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("SESSION_IDLE_TTL must be a duration: %w", err)
	}
	if cfg.Session.SweepInterval, err = time.ParseDuration(getEnvOrViper("SESSION_SWEEP_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL must be a duration: %w", err)
	}
	if cfg.Checkout.ProcessingDelay, err = time.ParseDuration(getEnvOrViper("CHECKOUT_PROCESSING_DELAY", "2s")); err != nil {
		return nil, fmt.Errorf("CHECKOUT_PROCESSING_DELAY must be a duration: %w", err)
	}
	if cfg.Checkout.FreeShippingThreshold, err = decimal.NewFromString(getEnvOrViper("FREE_SHIPPING_THRESHOLD", "150")); err != nil {
		return nil, fmt.Errorf("FREE_SHIPPING_THRESHOLD must be a decimal: %w", err)
	}
	if cfg.Checkout.FlatShippingFee, err = decimal.NewFromString(getEnvOrViper("FLAT_SHIPPING_FEE", "9.99")); err != nil {
		return nil, fmt.Errorf("FLAT_SHIPPING_FEE must be a decimal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory:
	case StorageFile:
		if c.Storage.FileDir == "" {
			return fmt.Errorf("STORAGE_FILE_DIR is required for the file backend")
		}
	case StoragePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres backend")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("DB_NAME is required for the postgres backend")
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
		// a loaded session must not outlive its stored records
		if c.Redis.SessionTTL > 0 && (c.Session.IdleTTL <= 0 || c.Session.IdleTTL > c.Redis.SessionTTL) {
			return fmt.Errorf("SESSION_IDLE_TTL must be set and not exceed REDIS_SESSION_TTL")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Language != "sk" && c.Language != "en" {
		return fmt.Errorf("DEFAULT_LANGUAGE must be sk or en, got %q", c.Language)
	}
	if c.Session.IdleTTL < 0 || c.Session.SweepInterval < 0 {
		return fmt.Errorf("session durations cannot be negative")
	}
	if c.Checkout.ProcessingDelay < 0 {
		return fmt.Errorf("CHECKOUT_PROCESSING_DELAY cannot be negative")
	}
	if c.Checkout.FreeShippingThreshold.IsNegative() || c.Checkout.FlatShippingFee.IsNegative() {
		return fmt.Errorf("shipping amounts cannot be negative")
	}

	return nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
