// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml), with ${VAR} references expanded from the environment
//  2. Environment variables (fallback)
//
// A .env file in the working directory is loaded into the environment first.
//
// Example usage:
//
//	cfg, err := config.LoadOrEnv("config.yaml")
//	if err := cfg.Validate(); err != nil { ... }
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/receiptsplit/pkg/logging"
)

const (
	ExtractorDemo    = "demo"
	ExtractorMistral = "mistral"
)

// Config represents the entire application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Sessions      SessionsConfig      `yaml:"sessions"`
	Extraction    ExtractionConfig    `yaml:"extraction"`
	AMQP          AMQPConfig          `yaml:"amqp"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `yaml:"port"`
	StaticPath      string        `yaml:"static_path"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// SessionsConfig controls how long a split session lives and how its tokens are signed.
type SessionsConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// TokenSecret signs session tokens. When empty a random secret is generated
	// at startup, so tokens do not survive a restart.
	TokenSecret string `yaml:"token_secret"`
}

// ExtractionConfig selects and tunes the receipt extractor.
type ExtractionConfig struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

// AMQPConfig holds the broker for settlement events. An empty URL disables publishing.
type AMQPConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	MetricsPath string `yaml:"metrics_path"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			StaticPath:      "./static",
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			DatabasePath: "./data/sessions.db",
		},
		Sessions: SessionsConfig{
			TTL:             24 * time.Hour,
			CleanupInterval: 15 * time.Minute,
		},
		Extraction: ExtractionConfig{
			Provider:    ExtractorDemo,
			Model:       "pixtral-12b-latest",
			BaseURL:     "https://api.mistral.ai/v1",
			Concurrency: 4,
			Timeout:     60 * time.Second,
		},
		AMQP: AMQPConfig{
			Exchange:   "receiptsplit",
			RoutingKey: "settlements",
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			MetricsPath: "/metrics",
		},
	}
}

// Load reads and parses the config file. Unset keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${MISTRAL_API_KEY})
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	d := Default()
	return &Config{
		Server: ServerConfig{
			Port:            getEnvInt("PORT", d.Server.Port),
			StaticPath:      getEnv("STATIC_PATH", d.Server.StaticPath),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", d.Server.ShutdownTimeout),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("DB_PATH", d.Storage.DatabasePath),
		},
		Sessions: SessionsConfig{
			TTL:             getEnvDuration("SESSION_TTL", d.Sessions.TTL),
			CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", d.Sessions.CleanupInterval),
			TokenSecret:     os.Getenv("SESSION_SECRET"),
		},
		Extraction: ExtractionConfig{
			Provider:    getEnv("EXTRACTOR", d.Extraction.Provider),
			APIKey:      os.Getenv("MISTRAL_API_KEY"),
			Model:       getEnv("MISTRAL_MODEL", d.Extraction.Model),
			BaseURL:     getEnv("MISTRAL_BASE_URL", d.Extraction.BaseURL),
			Concurrency: getEnvInt("EXTRACTION_CONCURRENCY", d.Extraction.Concurrency),
			Timeout:     getEnvDuration("EXTRACTION_TIMEOUT", d.Extraction.Timeout),
		},
		AMQP: AMQPConfig{
			URL:        os.Getenv("AMQP_URL"),
			Exchange:   getEnv("AMQP_EXCHANGE", d.AMQP.Exchange),
			RoutingKey: getEnv("AMQP_ROUTING_KEY", d.AMQP.RoutingKey),
		},
		Observability: ObservabilityConfig{
			LogLevel:    getEnv("LOG_LEVEL", d.Observability.LogLevel),
			MetricsPath: getEnv("METRICS_PATH", d.Observability.MetricsPath),
		},
	}
}

// LoadOrEnv loads .env, then tries path, falling back to environment variables
// when the file does not exist. A file that exists but cannot be parsed is an error.
func LoadOrEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return LoadFromEnv(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}
	if c.Storage.DatabasePath == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if c.Sessions.TTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid session TTL %v: must be positive", c.Sessions.TTL))
	}
	if c.Sessions.CleanupInterval <= 0 {
		problems = append(problems, fmt.Sprintf("invalid cleanup interval %v: must be positive", c.Sessions.CleanupInterval))
	}
	if s := c.Sessions.TokenSecret; s != "" && len(s) < 16 {
		problems = append(problems, "session token secret must be at least 16 characters")
	}

	switch c.Extraction.Provider {
	case ExtractorDemo:
	case ExtractorMistral:
		if c.Extraction.APIKey == "" {
			problems = append(problems, "MISTRAL_API_KEY is required when using the mistral extractor")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid extractor '%s': must be one of [%s %s]",
			c.Extraction.Provider, ExtractorDemo, ExtractorMistral))
	}
	if c.Extraction.Concurrency < 1 {
		problems = append(problems, fmt.Sprintf("invalid extraction concurrency %d: must be at least 1", c.Extraction.Concurrency))
	}
	if c.Extraction.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid extraction timeout %v: must be positive", c.Extraction.Timeout))
	}

	if c.AMQP.URL != "" {
		if parsedURL, err := url.Parse(c.AMQP.URL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQP.URL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQP.Exchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQP.RoutingKey == "" {
			problems = append(problems, "AMQP routing key cannot be empty when AMQP URL is provided")
		}
	}

	if _, ok := logging.ParseLevel(c.Observability.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.Observability.LogLevel))
	}
	if !strings.HasPrefix(c.Observability.MetricsPath, "/") {
		problems = append(problems, fmt.Sprintf("invalid metrics path '%s': must start with /", c.Observability.MetricsPath))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
