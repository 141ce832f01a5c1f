package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"ssl_mode"`
}

// SynthesisConfig holds the prompt template used to invent a new element.
// The template receives the two input element names via fmt.Sprintf.
type SynthesisConfig struct {
	Prompt string `toml:"prompt"`
}

type ServerConfig struct {
	Port    string `toml:"port"`
	LogMode string `toml:"log_mode"`
}

type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Database  DatabaseConfig  `toml:"database"`
	Synthesis SynthesisConfig `toml:"synthesis"`
	Server    ServerConfig    `toml:"server"`
}

// DefaultSynthesisPrompt matches the prompt the game shipped with: a strict
// JSON response naming the combined concept as a Korean noun plus an emoji.
const DefaultSynthesisPrompt = `You are an alchemy game engine. Combine "%s" and "%s" into a new concept. Return ONLY JSON: { "text": "Korean Name", "emoji": "Icon" }. Rules: Output must be in Korean (Hangul). Nouns only.`

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a usable config when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Synthesis.Prompt == "" {
		c.Synthesis.Prompt = DefaultSynthesisPrompt
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.User == "" {
		c.Database.User = "postgres"
	}
	if c.Database.Name == "" {
		c.Database.Name = "crucible"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// DSN assembles the Postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}
