// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider modes select where index variations come from.
const (
	ProviderSGS     = "sgs"     // live central bank SGS API
	ProviderArchive = "archive" // local postgres archive only
	ProviderStatic  = "static"  // fixtures, tests and demos
)

type Config struct {
	ServiceName string
	HTTPPort    int
	GRPCPort    int

	LogLevel  string
	LogFormat string

	DB       DBConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Provider ProviderConfig

	GRPCReflection bool
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
}

type RedisConfig struct {
	Addr    string
	Enabled bool
	TTL     time.Duration
}

type ProviderConfig struct {
	Mode       string
	SGSBaseURL string
	Timeout    time.Duration
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "calcjusd"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "calcjus"),
			Password: getEnv("DB_PASSWORD", "calcjus"),
			Database: getEnv("DB_NAME", "calcjus"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
			TTL:  getEnvDuration("REDIS_TTL", time.Hour),
		},
		Provider: ProviderConfig{
			Mode:       getEnv("INDEX_PROVIDER", ProviderSGS),
			SGSBaseURL: getEnv("SGS_BASE_URL", "https://api.bcb.gov.br"),
			Timeout:    getEnvDuration("SGS_TIMEOUT", 15*time.Second),
		},
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
	}
	cfg.Redis.Enabled = cfg.Redis.Addr != ""

	switch cfg.Provider.Mode {
	case ProviderSGS, ProviderArchive, ProviderStatic:
	default:
		return nil, fmt.Errorf("unknown INDEX_PROVIDER %q", cfg.Provider.Mode)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
