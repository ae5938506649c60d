package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	BoardRows       int
	BoardColumns    int
	MaxBoardRows    int
	MaxBoardColumns int
	Player1         PlayerConfig
	Player2         PlayerConfig
	FrontendURL     string
	AllowedOrigins  []string
	SessionIdle     time.Duration
	SessionFinished time.Duration
	CleanupInterval time.Duration
	GinMode         string
}

type PlayerConfig struct {
	Name  string
	Color string
}

// DefaultMaxBoardSize caps client-chosen dimensions when no limit is configured.
const DefaultMaxBoardSize = 20

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:8080")
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	return &Config{
		Port:            port,
		BoardRows:       GetEnvAsPositiveInt("BOARD_ROWS", 6),
		BoardColumns:    GetEnvAsPositiveInt("BOARD_COLUMNS", 7),
		MaxBoardRows:    GetEnvAsPositiveInt("MAX_BOARD_ROWS", DefaultMaxBoardSize),
		MaxBoardColumns: GetEnvAsPositiveInt("MAX_BOARD_COLUMNS", DefaultMaxBoardSize),
		Player1: PlayerConfig{
			Name:  GetEnv("PLAYER1_NAME", "p1"),
			Color: GetEnv("PLAYER1_COLOR", "red"),
		},
		Player2: PlayerConfig{
			Name:  GetEnv("PLAYER2_NAME", "p2"),
			Color: GetEnv("PLAYER2_COLOR", "blue"),
		},
		FrontendURL:     frontendURL,
		AllowedOrigins:  allowedOrigins,
		SessionIdle:     time.Duration(GetEnvAsPositiveInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
		SessionFinished: time.Duration(GetEnvAsPositiveInt("SESSION_FINISHED_MINUTES", 5)) * time.Minute,
		CleanupInterval: time.Duration(GetEnvAsPositiveInt("CLEANUP_INTERVAL_SECONDS", 60)) * time.Second,
		GinMode:         GetEnv("GIN_MODE", "release"),
	}
}

// IsOriginAllowed reports whether origin is on the CORS allow-list.
func (c *Config) IsOriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
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

// GetEnvAsPositiveInt is GetEnvAsInt that also falls back on zero or
// negative values.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Printf("Non-positive value for %s: %d, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return value
}
