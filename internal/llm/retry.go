package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/logger"
)

// ErrOverloaded marks a vendor overload/rate-limit failure that survived
// all retry attempts. Callers may substitute a fallback result.
var ErrOverloaded = errors.New("model endpoint overloaded")

// isOverloaded reports whether a response should be retried with backoff.
// Anthropic signals overload with HTTP 529, both vendors use 429.
func isOverloaded(status int, body []byte) bool {
	if status == 529 || status == 429 {
		return true
	}
	return strings.Contains(strings.ToLower(string(body)), "overloaded")
}

// withRetry runs fn with exponential backoff on overload errors.
// Non-overload errors fail immediately.
func withRetry(ctx context.Context, retry config.RetryConfig, log logger.Logger, fn func() (string, error)) (string, error) {
	var lastErr error

	for attempt := 0; attempt < retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := retry.BaseDelay * time.Duration(1<<(attempt-1))
			log.Warn(ctx, "API overloaded, retrying in %s (attempt %d/%d)", delay, attempt+1, retry.MaxAttempts)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := fn()
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrOverloaded) {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("request failed after %d attempts: %w", retry.MaxAttempts, lastErr)
}
