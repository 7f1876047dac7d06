package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort              string
	AdminAPIKey           string
	InputPath             string
	ReloadInterval        time.Duration
	DefaultCurrency       string
	PanelLimit            int
	GoogleSheetID         string
	GoogleCredentialsJSON string
	XLSXPath              string
	LogLevel              slog.Level
}

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding variables already set in the environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		AdminAPIKey:           os.Getenv("ADMIN_API_KEY"),
		InputPath:             os.Getenv("INPUT_PATH"),
		ReloadInterval:        envOrDefaultDuration("RELOAD_INTERVAL", time.Minute),
		DefaultCurrency:       envOrDefault("DEFAULT_CURRENCY", "ETH"),
		PanelLimit:            envOrDefaultPositiveInt("PANEL_LIMIT", 4),
		GoogleSheetID:         os.Getenv("GOOGLE_SHEET_ID"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		XLSXPath:              envOrDefault("XLSX_PATH", "lendstat.xlsx"),
		LogLevel:              envOrDefaultLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// SheetsEnabled reports whether both Google Sheets settings are present.
func (c Config) SheetsEnabled() bool {
	return c.GoogleSheetID != "" && c.GoogleCredentialsJSON != ""
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultPositiveInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			slog.Warn("invalid positive integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envOrDefaultLevel(key string, defaultVal slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return level
	}
	return defaultVal
}
