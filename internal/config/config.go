package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"chainlist-catalog/internal/adapter/storage/chainlist"

	"github.com/spf13/viper"
)

// DefaultDataDir is the ethereum-lists/chains checkout the catalog is built from.
const DefaultDataDir = chainlist.DefaultDataDir

// Config holds all configuration for the application.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Checker CheckerConfig `mapstructure:"checker"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// CatalogConfig holds settings for the on-disk chain catalog.
type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir"`
	// StrictChainID rejects files whose chainId field disagrees with the id in their name.
	StrictChainID bool `mapstructure:"strict_chain_id"`
}

// CheckerConfig holds settings related to the RPC checking process.
type CheckerConfig struct {
	CheckTimeout time.Duration `mapstructure:"check_timeout"`
	MaxWorkers   int           `mapstructure:"max_workers"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// CacheConfig holds settings for the caching layer.
type CacheConfig struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "chainlist-catalog")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("catalog.data_dir", DefaultDataDir)
	v.SetDefault("catalog.strict_chain_id", true)
	v.SetDefault("checker.check_timeout", "5s")
	v.SetDefault("checker.max_workers", 20)
	v.SetDefault("checker.cache_ttl", "30m")
	v.SetDefault("cache.default_expiration", "30m")
	v.SetDefault("cache.cleanup_interval", "1h")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("CHAINLIST_CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c CheckerConfig) GetTimeout() time.Duration {
	return c.CheckTimeout
}

func (c CheckerConfig) GetCacheTTL() time.Duration {
	return c.CacheTTL
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
