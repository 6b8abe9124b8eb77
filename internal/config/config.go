// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/weekhead/internal/dateutil"
	"github.com/javiermolinar/weekhead/internal/header"
	"github.com/javiermolinar/weekhead/internal/locale"
	"github.com/javiermolinar/weekhead/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Header HeaderConfig `toml:"header"`
	Locale LocaleConfig `toml:"locale"`
	UI     UIConfig     `toml:"ui"`
}

// HeaderConfig holds header layout and patterns.
type HeaderConfig struct {
	Days            int    `toml:"days"`              // 1, 3 or 7
	DayFormat       string `toml:"day_format"`        // e.g. "MMM D"
	WeekdayFormat   string `toml:"weekday_format"`    // e.g. "ddd"
	MonthYearFormat string `toml:"month_year_format"` // e.g. "MMMM Y"
}

// LocaleConfig selects the formatting locale.
type LocaleConfig struct {
	ID   string `toml:"id"`   // e.g. "en_US", "de", "fr-FR"
	File string `toml:"file"` // optional TOML locale definition to register
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme      string `toml:"theme"`       // "mocha", "frappe", "latte"
	TodayColor string `toml:"today_color"` // optional hex, replaces the today highlight
	Background string `toml:"background"`  // optional hex, replaces the container background
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Header: HeaderConfig{
			Days:            7,
			DayFormat:       header.DefaultDayFormat,
			WeekdayFormat:   header.DefaultWeekdayFormat,
			MonthYearFormat: header.DefaultMonthYearFormat,
		},
		Locale: LocaleConfig{
			ID: locale.DefaultID,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekhead", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Locale.File = expandPath(cfg.Locale.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("WEEKHEAD_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEEKHEAD_DAYS: %w", err)
		}
		cfg.Header.Days = n
	}
	if v := os.Getenv("WEEKHEAD_DAY_FORMAT"); v != "" {
		cfg.Header.DayFormat = v
	}
	if v := os.Getenv("WEEKHEAD_WEEKDAY_FORMAT"); v != "" {
		cfg.Header.WeekdayFormat = v
	}
	if v := os.Getenv("WEEKHEAD_MONTH_YEAR_FORMAT"); v != "" {
		cfg.Header.MonthYearFormat = v
	}

	if v := os.Getenv("WEEKHEAD_LOCALE"); v != "" {
		cfg.Locale.ID = v
	}
	if v := os.Getenv("WEEKHEAD_LOCALE_FILE"); v != "" {
		cfg.Locale.File = v
	}

	if v := os.Getenv("WEEKHEAD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("WEEKHEAD_UI_TODAY_COLOR"); v != "" {
		cfg.UI.TodayColor = v
	}
	if v := os.Getenv("WEEKHEAD_UI_BACKGROUND"); v != "" {
		cfg.UI.Background = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dateutil.ParseDayCount(c.Header.Days); err != nil {
		return fmt.Errorf("days: %w", err)
	}
	if c.Header.DayFormat == "" {
		return errors.New("day_format must be set")
	}
	if c.Header.WeekdayFormat == "" {
		return errors.New("weekday_format must be set")
	}
	if c.Header.MonthYearFormat == "" {
		return errors.New("month_year_format must be set")
	}
	if strings.TrimSpace(c.Locale.ID) == "" {
		return errors.New("locale id must be set")
	}
	if c.UI.Theme != "" && !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if err := validateColor("today_color", c.UI.TodayColor); err != nil {
		return err
	}
	if err := validateColor("background", c.UI.Background); err != nil {
		return err
	}
	return nil
}

// validateColor accepts an empty value or a hex color such as "#f38ba8".
func validateColor(key, value string) error {
	if value == "" {
		return nil
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%s: %q is not a hex color", key, value)
	}
	return nil
}

// DayCount returns the configured day count. Call Validate first.
func (c *Config) DayCount() dateutil.DayCount {
	n, err := dateutil.ParseDayCount(c.Header.Days)
	if err != nil {
		return dateutil.Seven
	}
	return n
}

// HeaderOptions returns the header options described by the config.
func (c *Config) HeaderOptions() header.Options {
	return header.Options{
		DayCount:        c.DayCount(),
		DayFormat:       c.Header.DayFormat,
		WeekdayFormat:   c.Header.WeekdayFormat,
		MonthYearFormat: c.Header.MonthYearFormat,
	}
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
