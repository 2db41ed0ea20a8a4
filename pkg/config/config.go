// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defaults are overlaid by an optional YAML file and then by environment variables

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LLM providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`

	// LLM contains text-generation provider configuration
	LLM LLMConfig `yaml:"llm"`

	// Bluesky contains the publishing account
	Bluesky BlueskyConfig `yaml:"bluesky"`

	// Fetch contains webpage retrieval configuration
	Fetch FetchConfig `yaml:"fetch"`

	// Generations contains generation registry configuration
	Generations GenerationsConfig `yaml:"generations"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File enables rotating file output instead of stdout
	File string `yaml:"file"`
}

// LLMConfig holds text-generation configuration
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// BlueskyConfig holds the account posts are published to. Empty credentials
// disable publishing.
type BlueskyConfig struct {
	Handle      string `yaml:"handle"`
	AppPassword string `yaml:"app_password"`
	Service     string `yaml:"service"`
}

// FetchConfig holds webpage retrieval configuration
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// GenerationsConfig holds generation registry configuration
type GenerationsConfig struct {
	// TTL is how long a generation ID stays resolvable for feedback
	TTL time.Duration `yaml:"ttl"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "5000"},
		Log:    LogConfig{Level: "info", Format: "text"},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			Temperature: 0.8,
			MaxTokens:   500,
		},
		Bluesky:     BlueskyConfig{Service: "https://bsky.social"},
		Fetch:       FetchConfig{Timeout: 30 * time.Second},
		Generations: GenerationsConfig{TTL: time.Hour},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is set and the file exists) and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Defaults and environment only
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel(cfg.LLM.Provider)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables,
// reading the YAML file named by CONFIG_FILE when set
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// DefaultModel returns the model used for provider when none is configured
func DefaultModel(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}

func (c *Config) applyEnvOverrides() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)

	c.LLM.Provider = getEnvOrDefault("LLM_PROVIDER", c.LLM.Provider)
	switch c.LLM.Provider {
	case ProviderGemini:
		c.LLM.APIKey = getEnvOrDefault("GEMINI_API_KEY", c.LLM.APIKey)
	default:
		c.LLM.APIKey = getEnvOrDefault("OPENAI_API_KEY", c.LLM.APIKey)
	}
	c.LLM.Model = getEnvOrDefault("LLM_MODEL", c.LLM.Model)
	c.LLM.BaseURL = getEnvOrDefault("LLM_BASE_URL", c.LLM.BaseURL)
	c.LLM.Temperature = getEnvAsFloatOrDefault("LLM_TEMPERATURE", c.LLM.Temperature)
	c.LLM.MaxTokens = getEnvAsIntOrDefault("LLM_MAX_TOKENS", c.LLM.MaxTokens)

	c.Bluesky.Handle = getEnvOrDefault("BLUESKY_HANDLE", c.Bluesky.Handle)
	c.Bluesky.AppPassword = getEnvOrDefault("BLUESKY_APP_PASSWORD", c.Bluesky.AppPassword)
	c.Bluesky.Service = getEnvOrDefault("BLUESKY_SERVICE", c.Bluesky.Service)

	c.Fetch.Timeout = getEnvAsDurationOrDefault("FETCH_TIMEOUT", c.Fetch.Timeout)
	c.Generations.TTL = getEnvAsDurationOrDefault("GENERATION_TTL", c.Generations.TTL)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// PublishingEnabled reports whether Bluesky credentials are configured
func (c *Config) PublishingEnabled() bool {
	return c.Bluesky.Handle != "" && c.Bluesky.AppPassword != ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.LLM.Provider != ProviderOpenAI && c.LLM.Provider != ProviderGemini {
		return errors.New("llm provider must be 'openai' or 'gemini'")
	}

	if c.LLM.Temperature <= 0 {
		return errors.New("llm temperature must be greater than 0")
	}

	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm max tokens must be greater than 0")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be greater than 0")
	}

	if c.Generations.TTL <= 0 {
		return errors.New("generation ttl must be greater than 0")
	}

	return nil
}

// RequireLLMKey reports a missing API key for the configured provider
func (c *Config) RequireLLMKey() error {
	if c.LLM.APIKey != "" {
		return nil
	}
	if c.LLM.Provider == ProviderGemini {
		return errors.New("GEMINI_API_KEY is required")
	}
	return errors.New("OPENAI_API_KEY is required")
}
