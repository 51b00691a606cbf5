package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/logger"
	"github.com/buildscope/handover-insight/pkg/restclient"
)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicEndpoint = "/v1/messages"
	anthropicVersion  = "2023-06-01"
)

type implAnthropic struct {
	rest   restclient.Client
	cfg    config.LLMConfig
	retry  config.RetryConfig
	logger logger.Logger
}

func newAnthropic(cfg config.LLMConfig, retry config.RetryConfig, log logger.Logger) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	headers := map[string]string{
		"x-api-key":         cfg.APIKeys[0],
		"anthropic-version": anthropicVersion,
	}
	return &implAnthropic{
		rest:   restclient.New(baseURL, headers),
		cfg:    cfg,
		retry:  retry,
		logger: log,
	}
}

type anthropicPayload struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *implAnthropic) Complete(ctx context.Context, req Request) (string, error) {
	payload := anthropicPayload{
		Model:       c.model(req),
		System:      req.System,
		MaxTokens:   c.maxTokens(req),
		Temperature: req.Temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
	}

	return withRetry(ctx, c.retry, c.logger, func() (string, error) {
		body, status, err := c.rest.Post(ctx, anthropicEndpoint, payload, nil)
		if err != nil {
			return "", fmt.Errorf("post messages: %w", err)
		}
		if isOverloaded(status, body) {
			return "", ErrOverloaded
		}

		var resp anthropicResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("parse response: %w", err)
		}
		if resp.Error != nil {
			return "", fmt.Errorf("anthropic API error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		if status != http.StatusOK {
			return "", fmt.Errorf("anthropic API returned HTTP %d", status)
		}
		if len(resp.Content) == 0 {
			return "", fmt.Errorf("empty response from Anthropic")
		}

		return resp.Content[0].Text, nil
	})
}

func (c *implAnthropic) model(req Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.cfg.Model
}

func (c *implAnthropic) maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return c.cfg.MaxTokens
}
