// Package config loads server settings from defaults, an optional TOML or
// YAML file, a .env file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Port     string `toml:"port" yaml:"port"`
	LogLevel string `toml:"log_level" yaml:"log_level"`

	JWTSecret string `toml:"jwt_secret" yaml:"jwt_secret"`

	StoreDriver   string `toml:"store_driver" yaml:"store_driver"`
	CacheDriver   string `toml:"cache_driver" yaml:"cache_driver"`
	RedisAddr     string `toml:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int    `toml:"redis_db" yaml:"redis_db"`
	DatabaseURL   string `toml:"database_url" yaml:"database_url"`

	AdviceCacheTTL Duration `toml:"advice_cache_ttl" yaml:"advice_cache_ttl"`
	LLMProvider    string   `toml:"llm_provider" yaml:"llm_provider"`
	GeminiAPIKey   string   `toml:"gemini_api_key" yaml:"gemini_api_key"`
	OpenAIAPIKey   string   `toml:"openai_api_key" yaml:"openai_api_key"`
	LLMModel       string   `toml:"llm_model" yaml:"llm_model"`
	LLMTimeout     Duration `toml:"llm_timeout" yaml:"llm_timeout"`

	RateLimitRequests int      `toml:"rate_limit_requests" yaml:"rate_limit_requests"`
	RateLimitWindow   Duration `toml:"rate_limit_window" yaml:"rate_limit_window"`
	CleanupSchedule   string   `toml:"cleanup_schedule" yaml:"cleanup_schedule"`
}

// Duration wraps time.Duration so files can say "30s" or "1h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Store and cache drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Port:              "8080",
		LogLevel:          "info",
		StoreDriver:       DriverMemory,
		CacheDriver:       DriverMemory,
		RedisAddr:         "localhost:6379",
		AdviceCacheTTL:    Duration{time.Hour},
		LLMProvider:       "gemini",
		LLMTimeout:        Duration{30 * time.Second},
		RateLimitRequests: 5,
		RateLimitWindow:   Duration{time.Minute},
		CleanupSchedule:   "@every 30m",
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, c); err != nil {
			return fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.StoreDriver = getEnv("STORE_DRIVER", c.StoreDriver)
	c.CacheDriver = getEnv("CACHE_DRIVER", c.CacheDriver)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.LLMProvider = getEnv("LLM_PROVIDER", c.LLMProvider)
	c.GeminiAPIKey = getEnv("GEMINI_API_KEY", c.GeminiAPIKey)
	c.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.LLMModel = getEnv("LLM_MODEL", c.LLMModel)
	c.CleanupSchedule = getEnv("CLEANUP_SCHEDULE", c.CleanupSchedule)

	var err error
	if c.RedisDB, err = getEnvInt("REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.RateLimitRequests, err = getEnvInt("RATE_LIMIT_REQUESTS", c.RateLimitRequests); err != nil {
		return err
	}
	for key, d := range map[string]*Duration{
		"ADVICE_CACHE_TTL":  &c.AdviceCacheTTL,
		"LLM_TIMEOUT":       &c.LLMTimeout,
		"RATE_LIMIT_WINDOW": &c.RateLimitWindow,
	} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			if err := d.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch c.StoreDriver {
	case DriverMemory, DriverRedis:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.CacheDriver != DriverMemory && c.CacheDriver != DriverRedis {
		return fmt.Errorf("unknown CACHE_DRIVER %q", c.CacheDriver)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.RateLimitWindow.Duration <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// LLMAPIKey returns the key for the configured provider.
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
