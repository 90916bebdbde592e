package config

import (
	"fmt"
	"time"

	"github.com/labelproof/backend/internal/infrastructure/refcache"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Matching MatchingConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UpstreamConfig holds reference data store configuration
type UpstreamConfig struct {
	APIKey          string `mapstructure:"api_key"`
	BaseURL         string `mapstructure:"base_url"`
	RequestsPerHour int    `mapstructure:"requests_per_hour"`
}

// CacheConfig holds reference cache configuration
type CacheConfig struct {
	ReferenceTTL time.Duration `mapstructure:"reference_ttl"`
	DocumentTTL  time.Duration `mapstructure:"document_ttl"`
	PageSize     int           `mapstructure:"page_size"`
}

// MatchingConfig holds matcher configuration
type MatchingConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelproof/")

	// Environment variable settings
	v.SetEnvPrefix("LABELPROOF")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Upstream defaults
	v.SetDefault("upstream.base_url", "https://refdata.labelproof.internal")
	v.SetDefault("upstream.requests_per_hour", 1000)

	// Cache defaults: 24h for determination tables, 1h for the active
	// regulatory document set
	v.SetDefault("cache.reference_ttl", refcache.ReferenceTTL)
	v.SetDefault("cache.document_ttl", refcache.DocumentTTL)
	v.SetDefault("cache.page_size", refcache.DefaultPageSize)

	// Matching defaults
	v.SetDefault("matching.enable_debug_logging", false)

	// Log defaults
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required (set LABELPROOF_UPSTREAM_BASE_URL)")
	}

	if config.Cache.ReferenceTTL <= 0 {
		return fmt.Errorf("cache reference TTL must be positive, got: %s", config.Cache.ReferenceTTL)
	}

	if config.Cache.DocumentTTL <= 0 {
		return fmt.Errorf("cache document TTL must be positive, got: %s", config.Cache.DocumentTTL)
	}

	if config.Cache.PageSize <= 0 {
		return fmt.Errorf("cache page size must be positive, got: %d", config.Cache.PageSize)
	}

	return nil
}
