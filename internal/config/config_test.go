package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "data/prayer-diary.db",
		},
		CalendarEditors: []string{"pastor@example.com"},
		Timezone:        "Europe/London",
		Print:           PrintConfig{DaysPerPage: 7},
		LogDir:          "logs",
		LogLevel:        "info",
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "prayer_diary_config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()

	err := Validate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", cfg.Location().String())
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Driver: DriverPostgres}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	cfg.Database.URL = "postgres://localhost/prayer_diary"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "mysql"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidEditorEmail(t *testing.T) {
	cfg := validConfig()
	cfg.CalendarEditors = []string{"pastor@example.com", "not-an-email"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Mars/Olympus_Mons"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone")
}

func TestValidate_DaysPerPageRange(t *testing.T) {
	cfg := validConfig()
	cfg.Print.DaysPerPage = 0
	assert.Error(t, Validate(cfg))

	cfg.Print.DaysPerPage = 32
	assert.Error(t, Validate(cfg))
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
database:
  driver: postgres
  url: "postgres://diary@localhost:5432/prayer_diary"
calendarEditors:
  - "pastor@example.com"
  - "office@example.com"
timezone: "Europe/London"
print:
  daysPerPage: 14
calendarSheetID: "sheet123"
logDir: "/var/log/prayer-diary"
logLevel: "debug"
`)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://diary@localhost:5432/prayer_diary", cfg.Database.URL)
	assert.Equal(t, []string{"pastor@example.com", "office@example.com"}, cfg.CalendarEditors)
	assert.Equal(t, 14, cfg.Print.DaysPerPage)
	assert.Equal(t, "sheet123", cfg.CalendarSheetID)
	assert.Equal(t, "/var/log/prayer-diary", cfg.LogDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Europe/London", cfg.Location().String())
}

func TestLoadFromPath_MinimalConfigDefaults(t *testing.T) {
	configPath := writeConfig(t, `
database:
  driver: sqlite
  path: "prayer-diary.db"
`)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, 7, cfg.Print.DaysPerPage)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CalendarEditors)
	assert.Empty(t, cfg.CalendarSheetID)
}

func TestLoadFromPath_DatabaseURLFromEnv(t *testing.T) {
	t.Setenv(DatabaseURLEnvVar, "postgres://env@db:5432/prayer_diary")

	configPath := writeConfig(t, `
database:
  driver: postgres
`)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@db:5432/prayer_diary", cfg.Database.URL)
}

func TestLoadFromPath_MissingDatabase(t *testing.T) {
	configPath := writeConfig(t, `
timezone: "UTC"
`)

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `
database: [unclosed
`)

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_ReadsDotEnvAndEnvConfig(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// Registered with t.Setenv so the value loaded from .env is cleared afterwards
	t.Setenv(DatabaseURLEnvVar, "")
	os.Unsetenv(DatabaseURLEnvVar)

	require.NoError(t, os.WriteFile(".env.test", []byte(DatabaseURLEnvVar+"=postgres://dotenv@db/prayer_diary\n"), 0644))
	require.NoError(t, os.WriteFile("prayer_diary_config.test.yaml", []byte("database:\n  driver: postgres\n"), 0644))

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, "postgres://dotenv@db/prayer_diary", cfg.Database.URL)
}

func TestLoadOAuthClientFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauthClient.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "installed": {
    "client_id": "client.apps.googleusercontent.com",
    "project_id": "prayer-diary",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "secret",
    "redirect_uris": ["http://localhost"]
  }
}`), 0644))

	cfg, err := LoadOAuthClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "prayer-diary", cfg.Installed.ProjectID)

	require.NoError(t, os.WriteFile(path, []byte(`{"installed": {"client_id": "x"}}`), 0644))
	_, err = LoadOAuthClientFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oauth client validation failed")
}
