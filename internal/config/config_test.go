package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/weekhead/internal/dateutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Header.Days != 7 {
		t.Errorf("expected 7 days, got %d", cfg.Header.Days)
	}
	if cfg.Header.DayFormat != "MMM D" {
		t.Errorf("expected day_format MMM D, got %s", cfg.Header.DayFormat)
	}
	if cfg.Header.MonthYearFormat != "MMMM Y" {
		t.Errorf("expected month_year_format MMMM Y, got %s", cfg.Header.MonthYearFormat)
	}
	if cfg.Locale.ID != "en_US" {
		t.Errorf("expected locale en_US, got %s", cfg.Locale.ID)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DayCount() != dateutil.Seven {
		t.Errorf("expected default day count, got %v", cfg.DayCount())
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[header]
days = 3
day_format = "D/M"
weekday_format = "dddd"
month_year_format = "MMM YYYY"

[locale]
id = "de"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DayCount() != dateutil.Three {
		t.Errorf("expected 3 days, got %v", cfg.DayCount())
	}
	opts := cfg.HeaderOptions()
	if opts.DayFormat != "D/M" || opts.WeekdayFormat != "dddd" || opts.MonthYearFormat != "MMM YYYY" {
		t.Errorf("unexpected header options: %+v", opts)
	}
	if cfg.Locale.ID != "de" {
		t.Errorf("expected locale de, got %s", cfg.Locale.ID)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[header]\ndays = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DayCount() != dateutil.One {
		t.Errorf("expected 1 day, got %v", cfg.DayCount())
	}
	if cfg.Header.DayFormat != "MMM D" {
		t.Errorf("expected default day_format, got %s", cfg.Header.DayFormat)
	}
}

func TestLoadFrom_InvalidDays(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[header]\ndays = 5\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if !errors.Is(err, dateutil.ErrInvalidDayCount) {
		t.Errorf("got error %v, want %v", err, dateutil.ErrInvalidDayCount)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[header\ndays = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WEEKHEAD_DAYS", "1")
	t.Setenv("WEEKHEAD_LOCALE", "fr_FR")
	t.Setenv("WEEKHEAD_DAY_FORMAT", "Do")
	t.Setenv("WEEKHEAD_WEEKDAY_FORMAT", "dd")
	t.Setenv("WEEKHEAD_MONTH_YEAR_FORMAT", "MMMM")
	t.Setenv("WEEKHEAD_UI_THEME", "frappe")
	t.Setenv("WEEKHEAD_UI_TODAY_COLOR", "#f38ba8")
	t.Setenv("WEEKHEAD_UI_BACKGROUND", "#000000")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DayCount() != dateutil.One {
		t.Errorf("expected 1 day, got %v", cfg.DayCount())
	}
	if cfg.Locale.ID != "fr_FR" {
		t.Errorf("expected locale fr_FR, got %s", cfg.Locale.ID)
	}
	if cfg.Header.DayFormat != "Do" || cfg.Header.WeekdayFormat != "dd" || cfg.Header.MonthYearFormat != "MMMM" {
		t.Errorf("unexpected header config: %+v", cfg.Header)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.UI.TodayColor != "#f38ba8" || cfg.UI.Background != "#000000" {
		t.Errorf("unexpected color overrides: %+v", cfg.UI)
	}
}

func TestEnvOverrides_BadDays(t *testing.T) {
	t.Setenv("WEEKHEAD_DAYS", "seven")
	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric WEEKHEAD_DAYS")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/locales/x.toml"); got != filepath.Join(home, "locales", "x.toml") {
		t.Errorf("got %s", got)
	}
	if got := expandPath("/abs/x.toml"); got != "/abs/x.toml" {
		t.Errorf("got %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty day format", func(c *Config) { c.Header.DayFormat = "" }},
		{"empty weekday format", func(c *Config) { c.Header.WeekdayFormat = "" }},
		{"empty month year format", func(c *Config) { c.Header.MonthYearFormat = "" }},
		{"empty locale", func(c *Config) { c.Locale.ID = " " }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"zero days", func(c *Config) { c.Header.Days = 0 }},
		{"bad today color", func(c *Config) { c.UI.TodayColor = "red" }},
		{"bad background", func(c *Config) { c.UI.Background = "#12" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Header.Days = 3
	cfg.Locale.ID = "de_DE"
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.DayCount() != dateutil.Three {
		t.Errorf("expected 3 days, got %v", loaded.DayCount())
	}
	if loaded.Locale.ID != "de_DE" {
		t.Errorf("expected locale de_DE, got %s", loaded.Locale.ID)
	}
}
