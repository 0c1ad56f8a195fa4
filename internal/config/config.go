package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppAddr        = ":8081"
	defaultAPIBaseURL     = "http://localhost:5000/api"
	defaultAPITimeout     = "0s"
	defaultSessionDB      = "session.db"
	defaultOfficialUserID = "15"
	defaultBackendAddr    = ":5000"
	defaultBackendDB      = "condo.db"
	defaultJWTTTL         = "24h"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultAllowedOrigins = "http://localhost:8081,http://localhost:19006"
	envFile               = ".env"
)

// AppConfig configures the front-end shell service.
type AppConfig struct {
	AppEnv         string
	Addr           string
	APIBaseURL     string
	APITimeout     time.Duration
	SessionDB      string
	OfficialUserID int64
	CameraFeeds    []string
	AllowedOrigins []string
}

// BackendConfig configures the local development backend.
type BackendConfig struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

// LoadDotEnv loads .env into the process environment. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{AppEnv: appEnv()}

	cfg.Addr = strings.TrimSpace(getEnv("APP_ADDR", defaultAppAddr))
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", defaultAPIBaseURL)), "/")
	cfg.SessionDB = strings.TrimSpace(getEnv("SESSION_DB", defaultSessionDB))
	cfg.CameraFeeds = parseListEnv("CAMERA_FEEDS", "")
	cfg.AllowedOrigins = parseListEnv("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)

	var err error
	cfg.APITimeout, err = parseDurationEnv("API_TIMEOUT", defaultAPITimeout)
	if err != nil {
		return nil, err
	}

	cfg.OfficialUserID, err = parseInt64Env("SCHEDULE_OFFICIAL_USER_ID", defaultOfficialUserID)
	if err != nil {
		return nil, err
	}

	if err := validateAppConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("app config: env=%s addr=%s api=%s session_db=%s official_user_id=%d",
		cfg.AppEnv, cfg.Addr, cfg.APIBaseURL, cfg.SessionDB, cfg.OfficialUserID)

	return cfg, nil
}

func LoadBackendConfig() (*BackendConfig, error) {
	cfg := &BackendConfig{AppEnv: appEnv()}

	cfg.Addr = strings.TrimSpace(getEnv("BACKEND_ADDR", defaultBackendAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultBackendDB))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validateBackendConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateAppConfig(cfg *AppConfig) error {
	if cfg.Addr == "" {
		return fmt.Errorf("APP_ADDR must not be empty")
	}
	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL")
	}
	if cfg.APITimeout < 0 {
		return fmt.Errorf("API_TIMEOUT must be >= 0")
	}
	if cfg.SessionDB == "" {
		return fmt.Errorf("SESSION_DB must not be empty")
	}
	if cfg.OfficialUserID <= 0 {
		return fmt.Errorf("SCHEDULE_OFFICIAL_USER_ID must be > 0")
	}
	if isProdLike(cfg.AppEnv) && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return fmt.Errorf("in prod/release API_BASE_URL must use https")
	}
	return nil
}

func validateBackendConfig(cfg *BackendConfig) error {
	if cfg.Addr == "" {
		return fmt.Errorf("BACKEND_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func appEnv() string {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = strings.TrimSpace(os.Getenv("ENV"))
	}
	if env == "" {
		env = "dev"
	}
	return strings.ToLower(env)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseInt64Env(name, fallback string) (int64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseListEnv(name, fallback string) []string {
	out := []string{}
	for _, item := range strings.Split(getEnv(name, fallback), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
