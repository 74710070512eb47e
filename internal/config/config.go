package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	Port                string
	JWTSecret           string
	TokenTTL            time.Duration
	AllowedOrigins      string
	OpeningBalanceMinor int64
	// AuthDelay simulates network latency on login and registration.
	AuthDelay time.Duration
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:            getMinutes("TOKEN_TTL_MINUTES", 60),
		AllowedOrigins:      getEnv("ALLOWED_ORIGINS", "*"),
		OpeningBalanceMinor: getInt64("OPENING_BALANCE", 1000000),
		AuthDelay:           getMillis("AUTH_DELAY_MS", 500),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getMinutes(key string, fallbackMinutes int) time.Duration {
	return time.Duration(getInt64(key, int64(fallbackMinutes))) * time.Minute
}

func getMillis(key string, fallbackMillis int) time.Duration {
	return time.Duration(getInt64(key, int64(fallbackMillis))) * time.Millisecond
}
