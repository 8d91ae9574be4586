package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StorageMongo    = "mongo"
)

type Config struct {
	App struct {
		Port         string
		AllowOrigins []string
	}
	Log struct {
		Level       string
		Development bool
	}
	Storage struct {
		Backend string
	}
	Sink struct {
		URL     string
		Timeout time.Duration
	}
	Plan struct {
		Threshold decimal.Decimal
	}
	Notifications struct {
		StaleAfter time.Duration
		CheckEvery time.Duration
	}
	Mail struct {
		Host     string
		Port     int
		User     string
		Password string
		From     string
		To       []string
	}
	Location *time.Location
}

// Load reads an optional .env file at path, then the environment.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	var err error

	cfg.App.Port = getenvDefault("APP_PORT", "8080")
	cfg.App.AllowOrigins = splitList(os.Getenv("CORS_ALLOW_ORIGINS"))
	cfg.Log.Level = getenvDefault("LOG_LEVEL", "info")
	if cfg.Log.Development, err = getenvBool("LOG_DEVELOPMENT", false); err != nil {
		return nil, err
	}

	cfg.Storage.Backend = strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageMemory))
	switch cfg.Storage.Backend {
	case StorageMemory, StorageDynamoDB, StorageMongo:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND: unsupported value %q", cfg.Storage.Backend)
	}

	cfg.Sink.URL = strings.TrimSpace(os.Getenv("SINK_URL"))
	if cfg.Sink.Timeout, err = getenvDuration("SINK_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.Plan.Threshold, err = decimal.NewFromString(getenvDefault("PLAN_THRESHOLD", "3000"))
	if err != nil {
		return nil, fmt.Errorf("PLAN_THRESHOLD: %w", err)
	}

	if cfg.Notifications.StaleAfter, err = getenvDuration("STALE_ORDER_AFTER", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Notifications.CheckEvery, err = getenvDuration("STALE_CHECK_EVERY", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Notifications.CheckEvery <= 0 {
		return nil, fmt.Errorf("STALE_CHECK_EVERY must be positive")
	}

	cfg.Location, err = time.LoadLocation(getenvDefault("TIMEZONE", "Europe/Moscow"))
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	cfg.Mail.Host = os.Getenv("SMTP_HOST")
	if cfg.Mail.Port, err = strconv.Atoi(getenvDefault("SMTP_PORT", "465")); err != nil {
		return nil, fmt.Errorf("SMTP_PORT: %w", err)
	}
	cfg.Mail.User = os.Getenv("SMTP_USER")
	cfg.Mail.Password = os.Getenv("SMTP_PASSWORD")
	cfg.Mail.From = os.Getenv("REPORT_MAIL_FROM")
	cfg.Mail.To = splitList(os.Getenv("REPORT_MAIL_TO"))

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
