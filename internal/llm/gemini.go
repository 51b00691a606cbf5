package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/logger"
)

type implGemini struct {
	apiKeys []string
	cfg     config.LLMConfig
	logger  logger.Logger

	// currentKey is shared across the watcher's concurrent handlers
	mu         sync.Mutex
	currentKey int
}

func newGemini(cfg config.LLMConfig, log logger.Logger) Client {
	return &implGemini{
		apiKeys: cfg.APIKeys,
		cfg:     cfg,
		logger:  log,
	}
}

// Complete sends the prompt to Gemini. Rotates API keys on 429 / quota errors.
func (c *implGemini) Complete(ctx context.Context, req Request) (string, error) {
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + req.Prompt
	}

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		keyIndex, key := c.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), c.generateConfig(req))
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// generateConfig carries the request's sampling overrides, falling
// back to the configured defaults.
func (c *implGemini) generateConfig(req Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.cfg.Temperature
	}
	return &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     genai.Ptr(float32(temperature)),
	}
}

func (c *implGemini) key() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey, c.apiKeys[c.currentKey]
}

func (c *implGemini) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
