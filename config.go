package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Map    MapConfig    `mapstructure:"map"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// MapConfig points at the map file; empty means the embedded sample map
type MapConfig struct {
	File string `mapstructure:"file"`
}

type SearchConfig struct {
	Mode          string  `mapstructure:"mode"`    // augmented | plain
	Penalty       float64 `mapstructure:"penalty"` // extra cost of Penalty cells
	MaxExpansions int     `mapstructure:"maxExpansions"`
	Labels        string  `mapstructure:"labels"` // en | pt
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

// CacheConfig enables the Redis response cache when RedisAddr is set
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redisAddr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"`
	Prefix    string        `mapstructure:"prefix"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ShutdownTimeout: 5 * time.Second,
		},
		Search: SearchConfig{
			Mode:    Augmented.String(),
			Penalty: DefaultPenalty,
			Labels:  "en",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			TTL:    10 * time.Minute,
			Prefix: "gridroute:",
		},
	}
}

// LoadConfig reads configuration from an optional file and GRIDROUTE_* environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	def := DefaultConfig()
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.shutdownTimeout", def.Server.ShutdownTimeout)
	v.SetDefault("map.file", def.Map.File)
	v.SetDefault("search.mode", def.Search.Mode)
	v.SetDefault("search.penalty", def.Search.Penalty)
	v.SetDefault("search.maxExpansions", def.Search.MaxExpansions)
	v.SetDefault("search.labels", def.Search.Labels)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("cache.redisAddr", def.Cache.RedisAddr)
	v.SetDefault("cache.password", def.Cache.Password)
	v.SetDefault("cache.db", def.Cache.DB)
	v.SetDefault("cache.ttl", def.Cache.TTL)
	v.SetDefault("cache.prefix", def.Cache.Prefix)

	v.SetEnvPrefix("GRIDROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := ParseMode(c.Search.Mode); err != nil {
		return &ConfigError{Field: "search.mode", Message: err.Error()}
	}
	if _, ok := LabelsFor(c.Search.Labels); !ok {
		return &ConfigError{Field: "search.labels", Message: "must be en or pt"}
	}
	if c.Search.Penalty < 0 {
		return &ConfigError{Field: "search.penalty", Message: "must not be negative"}
	}
	if c.Search.MaxExpansions < 0 {
		return &ConfigError{Field: "search.maxExpansions", Message: "must not be negative"}
	}
	return nil
}

// SearchOptions converts the search section into engine options
func (c *Config) SearchOptions() []Option {
	mode, _ := ParseMode(c.Search.Mode)
	return []Option{
		WithMode(mode),
		WithPenalty(c.Search.Penalty),
		WithMaxExpansions(c.Search.MaxExpansions),
	}
}

// Labels returns the configured command label set
func (c *Config) Labels() Labels {
	labels, _ := LabelsFor(c.Search.Labels)
	return labels
}

// LoadGrid loads the configured map, or the embedded one
func (c *Config) LoadGrid() (*Grid, error) {
	if c.Map.File == "" {
		return LoadDefaultMap()
	}
	return LoadMap(c.Map.File)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// IsConfigError reports whether err is a configuration validation error
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
