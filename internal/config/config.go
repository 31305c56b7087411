package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Menu   MenuConfig
	UI     UIConfig
	Logger LoggerConfig
}

// MenuConfig holds session and import defaults.
type MenuConfig struct {
	Role         string
	ImportPolicy string // "drop" or "reject"
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	Theme    string
	Currency string
	NoColor  bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
	File   string // empty means stderr
}

// Load reads configuration from the environment, after applying a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Menu: MenuConfig{
			Role:         getEnv("MENU_ROLE", string(model.RoleUser)),
			ImportPolicy: getEnv("MENU_IMPORT_POLICY", string(menu.DropInvalid)),
		},
		UI: UIConfig{
			Theme:    getEnv("MENU_THEME", "classic"),
			Currency: getEnv("MENU_CURRENCY", "R"),
			NoColor:  getEnvAsBool("MENU_NO_COLOR", false),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			File:   getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := model.ParseRole(c.Menu.Role); err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	if _, err := menu.ParseImportPolicy(c.Menu.ImportPolicy); err != nil {
		return err
	}

	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme: %s (must be classic, neon, or mono)", c.UI.Theme)
	}

	if strings.TrimSpace(c.UI.Currency) == "" {
		return fmt.Errorf("currency symbol is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Policy returns the parsed import policy, falling back to drop.
func (c *MenuConfig) Policy() menu.ImportPolicy {
	p, err := menu.ParseImportPolicy(c.ImportPolicy)
	if err != nil {
		return menu.DropInvalid
	}
	return p
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
