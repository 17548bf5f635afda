package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DatabaseURLEnvVar = "PRAYER_DIARY_DATABASE_URL"
	UserEnvVar        = "PRAYER_DIARY_USER"

	defaultDaysPerPage = 7
	defaultLogDir      = "logs"
	defaultLogLevel    = "info"
)

// DatabaseConfig selects and locates the record store
type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	URL    string `yaml:"url,omitempty" validate:"required_if=Driver postgres"`
	Path   string `yaml:"path,omitempty" validate:"required_if=Driver sqlite"`
}

// PrintConfig controls the printable calendar layout
type PrintConfig struct {
	DaysPerPage int `yaml:"daysPerPage,omitempty" validate:"min=1,max=31"`
}

// Config represents the application configuration
type Config struct {
	Database        DatabaseConfig `yaml:"database"`
	CalendarEditors []string       `yaml:"calendarEditors,omitempty" validate:"dive,email"`
	Timezone        string         `yaml:"timezone,omitempty"`
	Print           PrintConfig    `yaml:"print,omitempty"`
	CalendarSheetID string         `yaml:"calendarSheetID,omitempty"`
	LogDir          string         `yaml:"logDir,omitempty"`
	LogLevel        string         `yaml:"logLevel,omitempty" validate:"oneof=debug info warn error"`

	location *time.Location
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads prayer_diary_config.<env>.yaml (or prayer_diary_config.yaml when env is empty).
// .env.<env> and .env files are loaded into the process environment first, if present.
func LoadWithEnv(env string) (*Config, error) {
	if err := loadDotEnv(env); err != nil {
		return nil, err
	}

	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads, defaults and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if url := os.Getenv(DatabaseURLEnvVar); url != "" {
		cfg.Database.URL = url
	}
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and resolves the time zone
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return nil
}

// Location returns the configured time zone (UTC if not validated)
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Today returns the current calendar date in the configured time zone
func (c *Config) Today() time.Time {
	now := time.Now().In(c.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location())
}

func applyDefaults(cfg *Config) {
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.Print.DaysPerPage == 0 {
		cfg.Print.DaysPerPage = defaultDaysPerPage
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
}

// loadDotEnv loads .env.<env> then .env; missing files are ignored.
// Variables already set in the environment are never overridden.
func loadDotEnv(env string) error {
	files := []string{".env"}
	if env != "" {
		files = []string{".env." + env, ".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// findConfigFile searches for the config file in the current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "prayer_diary_config.yaml"
	if env != "" {
		configFileName = "prayer_diary_config." + env + ".yaml"
	}
	return findFile(configFileName)
}

// findFile returns name if it exists in the working directory, else its path in the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
