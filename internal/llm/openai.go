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
	openaiBaseURL  = "https://api.openai.com"
	openaiEndpoint = "/v1/chat/completions"
)

type implOpenAI struct {
	rest   restclient.Client
	cfg    config.LLMConfig
	retry  config.RetryConfig
	logger logger.Logger
}

func newOpenAI(cfg config.LLMConfig, retry config.RetryConfig, log logger.Logger) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openaiBaseURL
	}
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.APIKeys[0],
	}
	return &implOpenAI{
		rest:   restclient.New(baseURL, headers),
		cfg:    cfg,
		retry:  retry,
		logger: log,
	}
}

type openaiPayload struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *implOpenAI) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openaiMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openaiMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, openaiMessage{Role: "user", Content: req.Prompt})

	payload := openaiPayload{
		Model:       c.model(req),
		Messages:    messages,
		MaxTokens:   c.maxTokens(req),
		Temperature: req.Temperature,
	}

	return withRetry(ctx, c.retry, c.logger, func() (string, error) {
		body, status, err := c.rest.Post(ctx, openaiEndpoint, payload, nil)
		if err != nil {
			return "", fmt.Errorf("post chat completion: %w", err)
		}
		if isOverloaded(status, body) {
			return "", ErrOverloaded
		}

		var resp openaiResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", fmt.Errorf("parse response: %w", err)
		}
		if resp.Error != nil {
			return "", fmt.Errorf("openai API error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		if status != http.StatusOK {
			return "", fmt.Errorf("openai API returned HTTP %d", status)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("empty response from OpenAI")
		}

		return resp.Choices[0].Message.Content, nil
	})
}

func (c *implOpenAI) model(req Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.cfg.Model
}

func (c *implOpenAI) maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return c.cfg.MaxTokens
}
