package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Local cache store configuration. A bare file path (or :memory:)
	// opens sqlite; a postgres:// URL opens Postgres with the same schema.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Remote store configuration
	RemoteBaseURL    string `mapstructure:"REMOTE_BASE_URL"`
	RemoteAPIKey     string `mapstructure:"REMOTE_API_KEY"`
	RemoteTimeoutSec int    `mapstructure:"REMOTE_TIMEOUT_SEC"`

	// Sync policy. Cached data for a company is considered fresh for
	// SyncStalenessMinutes after the last successful fetch; within that
	// window reads are served cache-only.
	SyncStalenessMinutes int `mapstructure:"SYNC_STALENESS_MINUTES"`

	// Retention policy: cached records older than this horizon (rounded
	// down to a week boundary) are purged from the local cache.
	RetentionDays int `mapstructure:"RETENTION_DAYS"`

	// Planning window widths in weeks, relative to the current week.
	ManagerWeeksBack   int `mapstructure:"MANAGER_WEEKS_BACK"`
	ManagerWeeksAhead  int `mapstructure:"MANAGER_WEEKS_AHEAD"`
	EmployeeWeeksBack  int `mapstructure:"EMPLOYEE_WEEKS_BACK"`
	EmployeeWeeksAhead int `mapstructure:"EMPLOYEE_WEEKS_AHEAD"`

	// Coverage verdict thresholds (fractions of the department's
	// operating window).
	CoverageCompleteThreshold float64 `mapstructure:"COVERAGE_COMPLETE_THRESHOLD"`
	CoveragePartialFloor      float64 `mapstructure:"COVERAGE_PARTIAL_FLOOR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// RemoteTimeout returns the remote HTTP client timeout as a duration.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutSec) * time.Second
}

// SyncStaleness returns the cache freshness interval as a duration.
func (c *Config) SyncStaleness() time.Duration {
	return time.Duration(c.SyncStalenessMinutes) * time.Minute
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_URL", "planner-cache.db")

	viper.SetDefault("REMOTE_TIMEOUT_SEC", 15)

	viper.SetDefault("SYNC_STALENESS_MINUTES", 15)
	viper.SetDefault("RETENTION_DAYS", 90)

	viper.SetDefault("MANAGER_WEEKS_BACK", 4)
	viper.SetDefault("MANAGER_WEEKS_AHEAD", 8)
	viper.SetDefault("EMPLOYEE_WEEKS_BACK", 2)
	viper.SetDefault("EMPLOYEE_WEEKS_AHEAD", 1)

	viper.SetDefault("COVERAGE_COMPLETE_THRESHOLD", 0.95)
	viper.SetDefault("COVERAGE_PARTIAL_FLOOR", 0.50)
}

func validate(config *Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.SyncStalenessMinutes <= 0 {
		return fmt.Errorf("SYNC_STALENESS_MINUTES must be positive")
	}
	if config.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive")
	}
	if config.CoveragePartialFloor < 0 || config.CoverageCompleteThreshold > 1 ||
		config.CoveragePartialFloor >= config.CoverageCompleteThreshold {
		return fmt.Errorf("coverage thresholds must satisfy 0 <= partial floor < complete threshold <= 1")
	}
	return nil
}
