package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DB: a postgres:// DSN or a sqlite file path.
	DatabaseURL string

	// HTTP
	Addr        string
	CORSOrigins []string

	// Server
	Environment     string
	LogLevel        string
	LogSQL          bool
	ShutdownTimeout time.Duration
}

func Load() Config {
	// Best effort: a missing .env file is fine.
	_ = godotenv.Load()

	return Config{
		DatabaseURL:     getenv("DATABASE_URL", "freehost.db"),
		Addr:            getenv("ADDR", ":8080"),
		CORSOrigins:     strings.Split(getenv("CORS_ORIGINS", ""), ","),
		Environment:     getenv("ENVIRONMENT", "dev"),
		LogLevel:        getenv("LOG_LEVEL", ""),
		LogSQL:          getbool("LOG_SQL", false),
		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
	}
	return def
}
