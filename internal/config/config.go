package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SearchDepth          int
	BotDifficulty        string
	BotDelay             time.Duration
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	ArchiveRetentionDays int
	RedisURL             string
	RedisPassword        string
	MetricsAddr          string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		// 0 asks for a depth at startup
		SearchDepth:   GetEnvAsInt("SEARCH_DEPTH", 0),
		BotDifficulty: GetEnv("BOT_DIFFICULTY", ""),
		BotDelay:      GetEnvAsDuration("BOT_DELAY_MS", 1500*time.Millisecond),

		// Archive of finished games, disabled when empty
		DatabaseURL:          GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", "")),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		ArchiveRetentionDays: GetEnvAsInt("ARCHIVE_RETENTION_DAYS", 0),

		// Snapshots of games in progress, disabled when empty
		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),

		MetricsAddr: GetEnv("METRICS_ADDR", ""),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a number of milliseconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(valueStr)
	if err != nil || ms < 0 {
		log.Printf("Invalid duration value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
