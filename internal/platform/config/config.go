package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/NiruddeshJatra/mentorship-platform/internal/platform/database"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type Config struct {
	Port         string
	Database     database.Config
	Redis        RedisConfig
	JWTSecret    string
	RateLimit    string
	CORSOrigins  []string
	SlotCacheTTL time.Duration
	LogLevel     string
	LogFile      string
	AutoMigrate  bool
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Load reads .env when present and then the process environment, which
// always wins over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing file is fine outside local development
		_ = godotenv.Load(f)
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),
		Database: database.Config{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD", "postgres"),
			DBName:   getenv("DB_NAME", "mentorship"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RateLimit:   getenv("RATE_LIMIT", "100-M"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.Database.MaxConns, err = getint("DB_MAX_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = getint("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.SlotCacheTTL, err = getduration("SLOT_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.AutoMigrate, err = getbool("AUTO_MIGRATE", true); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getint(key string, fallback int) (int, error) {
	v := getenv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getduration(key string, fallback time.Duration) (time.Duration, error) {
	v := getenv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getbool(key string, fallback bool) (bool, error) {
	v := getenv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
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
