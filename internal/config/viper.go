// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration
const EnvPrefix = "BUDGET"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ledger struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Query struct {
		DefaultDays int `mapstructure:"default_days" yaml:"default_days"`
	} `mapstructure:"query" yaml:"query"`

	Chart struct {
		Width int `mapstructure:"width" yaml:"width"`
	} `mapstructure:"chart" yaml:"chart"`

	Report struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		Format    string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`

	Export struct {
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from the standard locations, then BUDGET_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is like InitializeConfig but reads the given config file
// instead of searching the standard locations. An empty path searches as usual.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.budget-csv")
		v.AddConfigPath(".budget-csv")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Plain LOG_LEVEL and LOG_FORMAT work as well, the prefixed names win
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file in the standard locations: defaults and env vars apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ledger.file", models.DefaultLedgerFile)

	// View Transactions starts 30 days back
	v.SetDefault("query.default_days", 30)

	v.SetDefault("chart.width", 40)

	v.SetDefault("report.directory", "reports")
	v.SetDefault("report.format", "json")

	v.SetDefault("export.sqlite_path", "finance_data.db")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Ledger.File) == "" {
		return fmt.Errorf("ledger.file must not be empty")
	}

	if config.Query.DefaultDays < 0 || config.Query.DefaultDays > 3650 {
		return fmt.Errorf("query.default_days must be between 0 and 3650, got: %d", config.Query.DefaultDays)
	}

	if config.Chart.Width < 10 || config.Chart.Width > 200 {
		return fmt.Errorf("chart.width must be between 10 and 200, got: %d", config.Chart.Width)
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
