package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Deployment environments the client knows how to reach.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Base URLs per environment, used when no explicit override is given.
var environmentBaseURLs = map[string]string{
	EnvDevelopment: "http://localhost:5000",
	EnvProduction:  "https://pr.manajet.io",
}

type Config struct {
	Environment string          `yaml:"environment"`
	API         APIConfig       `yaml:"api"`
	Search      SearchConfig    `yaml:"search"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	History     HistoryConfig   `yaml:"history"`
	Logging     LoggingConfig   `yaml:"logging"`
}

type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type SearchConfig struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
}

type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerSecond int  `yaml:"requests_per_second"`
	BurstSize         int  `yaml:"burst_size"`
}

type HistoryConfig struct {
	Size int `yaml:"size"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "error"
}

// Load resolves the configuration once at startup: defaults, then an
// optional YAML file, then environment variable overrides, then validation.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	config.setDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.loadFromEnv()

	// An empty base URL means "derive it from the environment selector".
	if config.API.BaseURL == "" {
		config.API.BaseURL = environmentBaseURLs[config.Environment]
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) setDefaults() {
	c.Environment = EnvProduction

	c.API.RequestTimeout = 30 * time.Second

	c.Search.DebounceWindow = 300 * time.Millisecond

	c.RateLimit.Enabled = false
	c.RateLimit.RequestsPerSecond = 10
	c.RateLimit.BurstSize = 20

	c.History.Size = 100

	c.Logging.Level = "info"
}

func (c *Config) loadFromEnv() {
	if env := os.Getenv("MANAJET_ENV"); env != "" {
		c.Environment = env
	}

	if baseURL := os.Getenv("MANAJET_BASE_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}

	if timeout := os.Getenv("MANAJET_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.RequestTimeout = d
		}
	}

	if window := os.Getenv("MANAJET_DEBOUNCE_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			c.Search.DebounceWindow = d
		}
	}

	if rps := os.Getenv("MANAJET_RATE_LIMIT_RPS"); rps != "" {
		if r, err := strconv.Atoi(rps); err == nil {
			c.RateLimit.Enabled = true
			c.RateLimit.RequestsPerSecond = r
		}
	}

	if size := os.Getenv("MANAJET_HISTORY_SIZE"); size != "" {
		if s, err := strconv.Atoi(size); err == nil {
			c.History.Size = s
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
}

func (c *Config) validate() error {
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("environment must be %q or %q", EnvDevelopment, EnvProduction)
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL cannot be empty")
	}

	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	if c.Search.DebounceWindow <= 0 {
		return fmt.Errorf("debounce window must be positive")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond < 1 {
		return fmt.Errorf("requests per second must be at least 1")
	}

	if c.History.Size < 1 {
		return fmt.Errorf("history size must be at least 1")
	}

	if c.Logging.Level != "debug" && c.Logging.Level != "info" && c.Logging.Level != "error" {
		return fmt.Errorf("log level must be 'debug', 'info', or 'error'")
	}

	return nil
}

// IsDevelopment reports whether the client is pointed at a development
// deployment; debug logging of the resolved configuration keys off this.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
