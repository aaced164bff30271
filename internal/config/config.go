package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/JonnyWalker81/pawlog/backend/internal/analytics"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverSupabase = "supabase"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port               string   `mapstructure:"port"`
	Env                string   `mapstructure:"env"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	// RateLimit is requests per minute per client; 0 disables limiting
	RateLimit int `mapstructure:"rate_limit"`
}

// StorageConfig selects and configures the event store
type StorageConfig struct {
	Driver             string `mapstructure:"driver"`
	SQLitePath         string `mapstructure:"sqlite_path"`
	SupabaseURL        string `mapstructure:"supabase_url"`
	SupabaseServiceKey string `mapstructure:"supabase_service_key"`
	// SeedFile overrides the built-in catalogs for fresh memory and sqlite stores
	SeedFile string `mapstructure:"seed_file"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// AnalyticsConfig tunes the dashboard and insights views
type AnalyticsConfig struct {
	// Timezone decides calendar-day boundaries; empty means the host zone
	Timezone          string `mapstructure:"timezone"`
	DefaultWindowDays int    `mapstructure:"default_window_days"`
	QuickAddLimit     int    `mapstructure:"quick_add_limit"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_allowed_origins", []string{})
	v.SetDefault("server.rate_limit", 300)
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.sqlite_path", "pawlog.db")
	v.SetDefault("storage.supabase_url", "")
	v.SetDefault("storage.supabase_service_key", "")
	v.SetDefault("storage.seed_file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("analytics.timezone", "")
	v.SetDefault("analytics.default_window_days", 30)
	v.SetDefault("analytics.quick_add_limit", 8)

	v.SetEnvPrefix("PAWLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by hosting platforms
	v.BindEnv("server.port", "PAWLOG_SERVER_PORT", "PORT")
	v.BindEnv("storage.supabase_url", "PAWLOG_STORAGE_SUPABASE_URL", "SUPABASE_URL")
	v.BindEnv("storage.supabase_service_key", "PAWLOG_STORAGE_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	case DriverSupabase:
		if c.Storage.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the supabase driver")
		}
		if c.Storage.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required for the supabase driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Analytics.DefaultWindowDays <= 0 {
		return fmt.Errorf("analytics.default_window_days must be positive")
	}
	if c.Analytics.DefaultWindowDays > analytics.MaxWindowDays {
		return fmt.Errorf("analytics.default_window_days must be at most %d", analytics.MaxWindowDays)
	}
	if c.Analytics.QuickAddLimit < 0 {
		return fmt.Errorf("analytics.quick_add_limit must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the analytics timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Analytics.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics.timezone %q: %w", c.Analytics.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
