package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm" validate:"required"`
	Retry       RetryConfig       `yaml:"retry"`
	Paths       PathsConfig       `yaml:"paths" validate:"required"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LLMConfig struct {
	Provider    string   `yaml:"provider" validate:"required,oneof=anthropic openai gemini mock"`
	Model       string   `yaml:"model"`
	APIKeys     []string `yaml:"api_keys"`
	BaseURL     string   `yaml:"base_url"`
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature float64  `yaml:"temperature" validate:"gte=0,lte=2"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" validate:"gte=0,lte=10"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

type PathsConfig struct {
	Input     string `yaml:"input" validate:"required"`
	Output    string `yaml:"output" validate:"required"`
	Questions string `yaml:"questions"`
	Database  string `yaml:"database"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	RequestDelay  time.Duration `yaml:"request_delay"`
}

// Validate applies defaults and checks required fields
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "anthropic"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaultModel(c.LLM.Provider)
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2000
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.BaseDelay == 0 {
		c.Retry.BaseDelay = 2 * time.Second
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/history.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.RequestDelay == 0 {
		c.Performance.RequestDelay = 500 * time.Millisecond
	}

	if c.LLM.Provider != "mock" && len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("llm.api_keys is required for provider %q", c.LLM.Provider)
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

func defaultModel(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o"
	case "gemini":
		return "gemini-2.5-flash"
	default:
		return "claude-3-5-sonnet-20241022"
	}
}
