package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the Career Connect service.
type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	Auth         AuthConfig
	AI           AIConfig
	Notification NotificationConfig
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Addr            string
	CORSOrigins     []string // empty allows every origin
	ShutdownTimeout time.Duration
}

// StoreConfig picks the backend that holds jobs, projects and applications.
type StoreConfig struct {
	Driver string // "memory" or "sqlite"
	Path   string // sqlite file, ignored for memory
	Seed   bool   // fill empty stores from the catalog
}

// AuthConfig controls the mock session table.
type AuthConfig struct {
	SessionTTL time.Duration
}

// AIConfig controls the content generator.
type AIConfig struct {
	Enabled  bool
	Provider string        // "gemini" or "openai"
	Model    string        // model identifier sent with every request
	APIKey   string        // expanded from env var by Load
	BaseURL  string        // empty uses the provider default
	Timeout  time.Duration // per-request timeout
}

// NotificationConfig controls which notifier receives board events.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel   = "gemini-2.5-flash"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	slackWebhookPrefix   = "https://hooks.slack.com/"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Server       rawServerConfig    `yaml:"server"`
	Store        rawStoreConfig     `yaml:"store"`
	Auth         rawAuthConfig      `yaml:"auth"`
	AI           rawAIConfig        `yaml:"ai"`
	Notification NotificationConfig `yaml:"notification"`
}

type rawServerConfig struct {
	Addr            string   `yaml:"addr"`
	CORSOrigins     []string `yaml:"cors_origins"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
}

type rawStoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Seed   *bool  `yaml:"seed"`
}

type rawAuthConfig struct {
	SessionTTL string `yaml:"session_ttl"`
}

type rawAIConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg, err := fromRaw(rawConfig{})
	if err != nil {
		// The zero raw config only exercises defaults.
		panic(err)
	}
	return cfg
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return fromRaw(raw)
}

func fromRaw(raw rawConfig) (*Config, error) {
	shutdown, err := parseDuration("server.shutdown_timeout", raw.Server.ShutdownTimeout, 10*time.Second)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := parseDuration("auth.session_ttl", raw.Auth.SessionTTL, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	aiTimeout, err := parseDuration("ai.timeout", raw.AI.Timeout, 30*time.Second)
	if err != nil {
		return nil, err
	}

	addr := raw.Server.Addr
	if addr == "" {
		addr = ":8080"
	}

	driver := strings.ToLower(raw.Store.Driver)
	if driver == "" {
		driver = DriverMemory
	}
	dbPath := raw.Store.Path
	if dbPath == "" && driver == DriverSQLite {
		dbPath = "careerconnect.db"
	}
	seed := true
	if raw.Store.Seed != nil {
		seed = *raw.Store.Seed
	}

	provider := strings.ToLower(raw.AI.Provider)
	if provider == "" {
		provider = ProviderGemini
	}
	aiModel := raw.AI.Model
	aiBaseURL := raw.AI.BaseURL
	switch provider {
	case ProviderGemini:
		if aiModel == "" {
			aiModel = defaultGeminiModel
		}
	case ProviderOpenAI:
		if aiModel == "" {
			aiModel = defaultOpenAIModel
		}
		if aiBaseURL == "" {
			aiBaseURL = defaultOpenAIBaseURL
		}
	}

	notification := raw.Notification
	if notification.Type == "" {
		notification.Type = "log"
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            addr,
			CORSOrigins:     raw.Server.CORSOrigins,
			ShutdownTimeout: shutdown,
		},
		Store: StoreConfig{
			Driver: driver,
			Path:   dbPath,
			Seed:   seed,
		},
		Auth: AuthConfig{
			SessionTTL: sessionTTL,
		},
		AI: AIConfig{
			Enabled:  raw.AI.Enabled,
			Provider: provider,
			Model:    aiModel,
			APIKey:   raw.AI.APIKey,
			BaseURL:  aiBaseURL,
			Timeout:  aiTimeout,
		},
		Notification: notification,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, value, err)
	}
	return d, nil
}

func validate(cfg *Config) error {
	if cfg.Store.Driver != DriverMemory && cfg.Store.Driver != DriverSQLite {
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverMemory, DriverSQLite, cfg.Store.Driver)
	}

	if cfg.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive, got %v", cfg.Auth.SessionTTL)
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", cfg.Server.ShutdownTimeout)
	}

	if cfg.Notification.Type != "log" && cfg.Notification.Type != "slack" {
		return fmt.Errorf("notification.type must be \"log\" or \"slack\", got %q", cfg.Notification.Type)
	}
	if cfg.Notification.Type == "slack" {
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if !strings.HasPrefix(cfg.Notification.WebhookURL, slackWebhookPrefix) {
			return fmt.Errorf("notification.webhook_url must start with %s", slackWebhookPrefix)
		}
	}

	if cfg.AI.Provider != ProviderGemini && cfg.AI.Provider != ProviderOpenAI {
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, cfg.AI.Provider)
	}
	if cfg.AI.Enabled {
		if cfg.AI.APIKey == "" {
			return fmt.Errorf("ai.api_key is required when ai.enabled is true")
		}
		if cfg.AI.Timeout <= 0 {
			return fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)
		}
	}

	return nil
}
