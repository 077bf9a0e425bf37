package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment names recognized in the config file.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all configuration for the client.
type Config struct {
	// Environment selects which entry of Environments is active.
	Environment  string               `yaml:"environment"`
	Environments map[string]APIConfig `yaml:"environments"`
	Session      SessionConfig        `yaml:"session"`
	Logging      LoggingConfig        `yaml:"logging"`
}

// APIConfig holds the panel API settings for one environment.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig holds the local session store settings.
type SessionConfig struct {
	// Backend is "file" or "redis".
	Backend string `yaml:"backend"`
	// Path is the directory for the file backend. Empty means a
	// default under the user's home directory, resolved by the caller.
	Path string `yaml:"path"`
	// Redis settings, used when Backend is "redis".
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	RedactPII *bool  `yaml:"redact_pii"`
}

// Active returns the API settings for the selected environment.
func (c *Config) Active() (APIConfig, error) {
	api, ok := c.Environments[c.Environment]
	if !ok {
		return APIConfig{}, fmt.Errorf("config: unknown environment %q", c.Environment)
	}
	return api, nil
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default loads the built-in configuration without a file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = EnvDevelopment
	}
	if cfg.Environments == nil {
		cfg.Environments = map[string]APIConfig{}
	}
	if _, ok := cfg.Environments[EnvDevelopment]; !ok {
		cfg.Environments[EnvDevelopment] = APIConfig{BaseURL: "http://localhost:8080"}
	}
	for name, api := range cfg.Environments {
		if api.TimeoutSeconds == 0 {
			api.TimeoutSeconds = 30
			cfg.Environments[name] = api
		}
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "file"
	}
	if cfg.Session.RedisAddr == "" {
		cfg.Session.RedisAddr = "localhost:6379"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env
// vars, so local overrides can live in .env.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	var cfg *Config
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = Default()
	}

	if env := os.Getenv("EMS_ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}
	if baseURL := os.Getenv("EMS_BASE_URL"); baseURL != "" {
		api := cfg.Environments[cfg.Environment]
		api.BaseURL = baseURL
		if api.TimeoutSeconds == 0 {
			api.TimeoutSeconds = 30
		}
		cfg.Environments[cfg.Environment] = api
	}
	if timeout := os.Getenv("EMS_TIMEOUT_SECONDS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			api := cfg.Environments[cfg.Environment]
			api.TimeoutSeconds = secs
			cfg.Environments[cfg.Environment] = api
		}
	}
	if backend := os.Getenv("EMS_SESSION_BACKEND"); backend != "" {
		cfg.Session.Backend = backend
	}
	if path := os.Getenv("EMS_SESSION_PATH"); path != "" {
		cfg.Session.Path = path
	}
	if addr := os.Getenv("EMS_REDIS_ADDR"); addr != "" {
		cfg.Session.RedisAddr = addr
	}
	if pass := os.Getenv("EMS_REDIS_PASSWORD"); pass != "" {
		cfg.Session.RedisPassword = pass
	}
	if level := os.Getenv("EMS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, nil
}
