package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tirasundara/expense-analyzer/internal/logger"
	"github.com/tirasundara/expense-analyzer/pkg/fileutil"
)

// Config holds application configuration
type Config struct {
	// Category rules and budgets (TOML). Empty means built-in rules / no budgets.
	RulesFile   string
	BudgetsFile string

	// Ingestion
	Encodings  []string
	DateFormat string // Go layout; empty means lenient parsing

	// Output
	OutputFormat string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (if present) and environment variables.
// It does not validate: callers apply their overrides first, then call Validate.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		RulesFile:    getEnv("EXPENSE_RULES_FILE", ""),
		BudgetsFile:  getEnv("EXPENSE_BUDGETS_FILE", ""),
		Encodings:    getEnvAsList("EXPENSE_ENCODINGS", fileutil.DefaultEncodings),
		DateFormat:   getEnv("EXPENSE_DATE_FORMAT", ""),
		OutputFormat: getEnv("EXPENSE_OUTPUT_FORMAT", "json"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", logger.FormatConsole),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing every problem
func (c *Config) Validate() error {
	var errors []string

	if len(c.Encodings) == 0 {
		errors = append(errors, "at least one encoding must be configured")
	}
	for _, enc := range c.Encodings {
		if err := fileutil.ValidateEncoding(enc); err != nil {
			errors = append(errors, err.Error())
		}
	}

	switch c.OutputFormat {
	case "json", "text":
	default:
		errors = append(errors, fmt.Sprintf("invalid output format '%s': must be json or text", c.OutputFormat))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	switch c.LogFormat {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be %s or %s", c.LogFormat, logger.FormatConsole, logger.FormatJSON))
	}

	for _, f := range []struct{ name, path string }{
		{"rules file", c.RulesFile},
		{"budgets file", c.BudgetsFile},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("%s does not exist: %s", f.name, f.path))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
