// Package config loads the program configuration from defaults, an optional
// YAML file, a .env file and the process environment, in this order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvAPIKey     = "OPENAI_API_KEY"
	EnvBaseURL    = "OPENAI_API_BASE_URL"
	EnvModel      = "OPENAI_MODEL"
	EnvProvider   = "ASTROLOG_PROVIDER"
	EnvSearxngURL = "SEARXNG_URL"
	EnvDebug      = "ASTROLOG_DEBUG"
	EnvAnthropic  = "ANTHROPIC_API_KEY"
	EnvCohere     = "COHERE_API_KEY"
	EnvGemini     = "GEMINI_API_KEY"
)

// Provider of the structured output client
type Provider = string

const (
	OpenAI    Provider = "openai"
	Anthropic Provider = "anthropic"
	Cohere    Provider = "cohere"
	Gemini    Provider = "gemini"
)

// KeySource tells where the API key was found
type KeySource int

const (
	KeyMissing KeySource = iota
	KeyFromEnvFile
	KeyFromSystem
)

func (s KeySource) String() string {
	switch s {
	case KeyFromEnvFile:
		return "📁 soubor .env"
	case KeyFromSystem:
		return "🖥️  systémová proměnná"
	}
	return "chybí"
}

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY chybí")

// Config of the command line programs
type Config struct {
	// Provider of the structured output agents: openai, anthropic, cohere or gemini
	Provider Provider `yaml:"provider"`
	// Model of the chat completion
	Model string `yaml:"model"`
	// BaseURL overrides the provider endpoint
	BaseURL string `yaml:"base_url"`
	// APIKey is only read from the environment
	APIKey string `yaml:"-"`
	// KeySource where APIKey came from
	KeySource KeySource `yaml:"-"`
	// AnthropicAPIKey is used by the anthropic provider
	AnthropicAPIKey string `yaml:"-"`
	// CohereAPIKey is used by the cohere provider
	CohereAPIKey string `yaml:"-"`
	// GeminiAPIKey is used by the gemini provider
	GeminiAPIKey string `yaml:"-"`
	// WebModel is the model of the web agents, Model when empty
	WebModel string `yaml:"web_model"`
	// Temperature of the completions
	Temperature float32 `yaml:"temperature"`
	// MaxTokens bounds every completion, zero leaves it to the provider
	MaxTokens int `yaml:"max_tokens"`
	// MaxSteps bounds tool call rounds of one turn
	MaxSteps int `yaml:"max_steps"`
	// SearxngURL is the web search instance
	SearxngURL string `yaml:"searxng_url"`
	// Language of the web search
	Language string `yaml:"language"`
	// OpenPages is the number of search results opened by the browser tool
	OpenPages int `yaml:"open_pages"`
	// PageTokens is the token budget of every opened page
	PageTokens int `yaml:"page_tokens"`
	// Debug enables debug logs
	Debug bool `yaml:"debug"`
	// LogFile enables the rotating log file
	LogFile string `yaml:"log_file"`
}

// Default returns the built in configuration
func Default() Config {
	return Config{
		Provider:   OpenAI,
		Model:      "gpt-4o-mini",
		MaxSteps:   8,
		SearxngURL: "http://localhost:8080",
		Language:   "cs",
		OpenPages:  3,
		PageTokens: 1500,
	}
}

// Loader reads configuration sources
type Loader struct {
	// ConfigFile is an optional YAML file
	ConfigFile string
	// EnvFile is an optional dotenv file
	EnvFile string
	// Getenv reads the process environment, os.Getenv when nil
	Getenv func(string) string
}

// Load returns the configuration on top of base.
// Values of the .env file never override the process environment, except the
// API key which prefers the file.
func (l Loader) Load(base Config) (*Config, error) {
	cfg := base
	if l.ConfigFile != "" {
		bs, err := os.ReadFile(l.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(bs, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", l.ConfigFile, err)
		}
	}
	fileEnv := map[string]string{}
	if l.EnvFile != "" {
		if _, err := os.Stat(l.EnvFile); err == nil {
			if fileEnv, err = godotenv.Read(l.EnvFile); err != nil {
				return nil, fmt.Errorf("parse %s: %w", l.EnvFile, err)
			}
		}
	}
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}
	if v := lookup(EnvProvider); v != "" {
		cfg.Provider = strings.ToLower(v)
	}
	if v := lookup(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := lookup(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := lookup(EnvSearxngURL); v != "" {
		cfg.SearxngURL = v
	}
	if v := lookup(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}
	cfg.AnthropicAPIKey = lookup(EnvAnthropic)
	cfg.CohereAPIKey = lookup(EnvCohere)
	cfg.GeminiAPIKey = lookup(EnvGemini)
	cfg.APIKey, cfg.KeySource = resolveKey(strings.Trim(strings.TrimSpace(fileEnv[EnvAPIKey]), `"'`), getenv(EnvAPIKey))
	return &cfg, nil
}

func resolveKey(fromFile string, fromSystem string) (string, KeySource) {
	switch {
	case fromFile != "":
		return fromFile, KeyFromEnvFile
	case fromSystem != "":
		return fromSystem, KeyFromSystem
	}
	return "", KeyMissing
}

// ValidateChat checks the configuration of the OpenAI function calling client.
// The structured output provider is not looked at.
func (c Config) ValidateChat() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	}
	return nil
}

// Validate checks the chat client and the structured output provider are usable
func (c Config) Validate() error {
	if err := c.ValidateChat(); err != nil {
		return err
	}
	switch c.Provider {
	case OpenAI:
	case Anthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("%s is required by the %s provider", EnvAnthropic, c.Provider)
		}
	case Cohere:
		if c.CohereAPIKey == "" {
			return fmt.Errorf("%s is required by the %s provider", EnvCohere, c.Provider)
		}
	case Gemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("%s is required by the %s provider", EnvGemini, c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

// WebModelName returns the model of the web agents
func (c Config) WebModelName() string {
	if c.WebModel != "" {
		return c.WebModel
	}
	return c.Model
}

// KeyLooksValid reports whether the key has the usual sk- prefix
func (c Config) KeyLooksValid() bool {
	return strings.HasPrefix(c.APIKey, "sk-")
}

// MaskedKey shows the first 12 and last 4 characters of the key
func (c Config) MaskedKey() string {
	return MaskKey(c.APIKey)
}

// MaskKey keeps the first 12 and the last 4 characters of a secret.
// Shorter secrets are printed the same way, the two parts may overlap.
func MaskKey(key string) string {
	return key[:min(12, len(key))] + "..." + key[len(key)-min(4, len(key)):]
}
