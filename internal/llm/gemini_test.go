package llm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/logger"
)

func newTestGemini(keys ...string) *implGemini {
	cfg := config.LLMConfig{
		Provider:    "gemini",
		Model:       "gemini-2.5-flash",
		APIKeys:     keys,
		MaxTokens:   2000,
		Temperature: 0.3,
	}
	return newGemini(cfg, logger.New("error")).(*implGemini)
}

// Rotation is shared state: in watch mode one client serves several
// handler goroutines, so concurrent rotations must stay in bounds.
// Run with -race.
func TestGeminiKeyRotationConcurrent(t *testing.T) {
	c := newTestGemini("key-a", "key-b", "key-c")

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.rotateKey()
				index, key := c.key()
				assert.GreaterOrEqual(t, index, 0)
				assert.Less(t, index, 3)
				assert.NotEmpty(t, key)
			}
		}()
	}
	wg.Wait()
}

func TestGeminiKeyRotationWraps(t *testing.T) {
	c := newTestGemini("key-a", "key-b")

	index, key := c.key()
	assert.Equal(t, 0, index)
	assert.Equal(t, "key-a", key)

	c.rotateKey()
	index, key = c.key()
	assert.Equal(t, 1, index)
	assert.Equal(t, "key-b", key)

	c.rotateKey()
	index, key = c.key()
	assert.Equal(t, 0, index)
	assert.Equal(t, "key-a", key)
}

func TestGeminiGenerateConfig(t *testing.T) {
	c := newTestGemini("key-a")

	// Request overrides win
	cfg := c.generateConfig(Request{MaxTokens: 1000, Temperature: 0.1})
	assert.Equal(t, int32(1000), cfg.MaxOutputTokens)
	assert.InDelta(t, 0.1, float64(*cfg.Temperature), 0.0001)

	// Zero values fall back to the configured defaults
	cfg = c.generateConfig(Request{})
	assert.Equal(t, int32(2000), cfg.MaxOutputTokens)
	assert.InDelta(t, 0.3, float64(*cfg.Temperature), 0.0001)
}
