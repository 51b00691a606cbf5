package llm

import (
	"fmt"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/logger"
)

// New creates a Client for the configured provider
func New(cfg config.LLMConfig, retry config.RetryConfig, log logger.Logger) (Client, error) {
	switch cfg.Provider {
	case "anthropic":
		return newAnthropic(cfg, retry, log), nil
	case "openai":
		return newOpenAI(cfg, retry, log), nil
	case "gemini":
		return newGemini(cfg, log), nil
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
