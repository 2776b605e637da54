// Package config handles configuration loading for TickerHub.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	AI      AIConfig      `mapstructure:"ai"      yaml:"ai"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Search  SearchConfig  `mapstructure:"search"  yaml:"search"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// AIConfig holds the AI filter parser configuration.
type AIConfig struct {
	APIKey         string  `mapstructure:"api_key"          yaml:"api_key"`
	BaseURL        string  `mapstructure:"base_url"         yaml:"base_url"` // OpenAI-compatible endpoint override
	Model          string  `mapstructure:"model"            yaml:"model"`
	Temperature    float64 `mapstructure:"temperature"      yaml:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"       yaml:"max_tokens"`
	DailyQuota     int     `mapstructure:"daily_quota"      yaml:"daily_quota"`
	MinQueryLength int     `mapstructure:"min_query_length" yaml:"min_query_length"`
	CacheTTLSec    int     `mapstructure:"cache_ttl_sec"    yaml:"cache_ttl_sec"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// SearchConfig holds fuzzy search settings.
type SearchConfig struct {
	MaxResults   int     `mapstructure:"max_results"   yaml:"max_results"`
	SuggestLimit int     `mapstructure:"suggest_limit" yaml:"suggest_limit"`
	ScoreFloor   float64 `mapstructure:"score_floor"   yaml:"score_floor"` // minimum bleve relevance to keep a hit
}

// CatalogConfig holds optional catalog override file paths.
// When empty, the built-in datasets are used.
type CatalogConfig struct {
	StocksCSV string `mapstructure:"stocks_csv" yaml:"stocks_csv"`
	CryptoCSV string `mapstructure:"crypto_csv" yaml:"crypto_csv"`
}

// NewsConfig holds market news settings.
type NewsConfig struct {
	CacheTTLSec  int `mapstructure:"cache_ttl_sec" yaml:"cache_ttl_sec"`
	DefaultLimit int `mapstructure:"default_limit" yaml:"default_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.tickerhub/config.yaml (home directory)
//  3. /etc/tickerhub/config.yaml (system)
//
// Environment variables override config file values.
// Format: TICKERHUB_<SECTION>_<KEY>, e.g., TICKERHUB_AI_API_KEY
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".tickerhub"))
	v.AddConfigPath("/etc/tickerhub")

	v.SetEnvPrefix("TICKERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("TICKERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// AI defaults
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.temperature", 0.1)
	v.SetDefault("ai.max_tokens", 512)
	v.SetDefault("ai.daily_quota", 200)
	v.SetDefault("ai.min_query_length", 10)
	v.SetDefault("ai.cache_ttl_sec", 600)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Search defaults
	v.SetDefault("search.max_results", 20)
	v.SetDefault("search.suggest_limit", 8)
	v.SetDefault("search.score_floor", 0.0)

	// News defaults
	v.SetDefault("news.cache_ttl_sec", 600)
	v.SetDefault("news.default_limit", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("TICKERHUB_AI_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	// Accept the conventional variable too, so a plain OpenAI setup works.
	if cfg.AI.APIKey == "" {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			cfg.AI.APIKey = key
		}
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
