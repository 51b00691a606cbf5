package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				LLM: LLMConfig{
					Provider: "anthropic",
					APIKeys:  []string{"sk-test"},
				},
				Paths: PathsConfig{
					Input:  "data/transcripts",
					Output: "data/reports",
				},
			},
			wantErr: false,
		},
		{
			name: "mock provider needs no keys",
			config: Config{
				LLM: LLMConfig{Provider: "mock"},
				Paths: PathsConfig{
					Input:  "data/transcripts",
					Output: "data/reports",
				},
			},
			wantErr: false,
		},
		{
			name: "missing api keys",
			config: Config{
				LLM: LLMConfig{Provider: "openai"},
				Paths: PathsConfig{
					Input:  "data/transcripts",
					Output: "data/reports",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				LLM: LLMConfig{
					Provider: "cohere",
					APIKeys:  []string{"k"},
				},
				Paths: PathsConfig{
					Input:  "data/transcripts",
					Output: "data/reports",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				LLM: LLMConfig{
					Provider: "anthropic",
					APIKeys:  []string{"sk-test"},
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		LLM: LLMConfig{Provider: "mock"},
		Paths: PathsConfig{
			Input:  "data/transcripts",
			Output: "data/reports",
		},
	}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "claude-3-5-sonnet-20241022", defaultModel("anthropic"))
	assert.Equal(t, "gpt-4o", defaultModel("openai"))
	assert.Equal(t, "gemini-2.5-flash", defaultModel("gemini"))

	assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, "data/history.db", cfg.Paths.Database)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.Equal(t, 500*time.Millisecond, cfg.Performance.RequestDelay)
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	t.Setenv("TEST_HANDOVER_KEY", "sk-from-env")

	content := `
llm:
  provider: "anthropic"
  model: "claude-3-5-sonnet-20241022"
  api_keys:
    - "${TEST_HANDOVER_KEY}"
  max_tokens: 1500
  temperature: 0.2

retry:
  max_attempts: 3
  base_delay: 2s

paths:
  input: "data/transcripts"
  output: "data/reports"
  questions: "data/questions.txt"

logging:
  level: "info"
`

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, []string{"sk-from-env"}, cfg.LLM.APIKeys)
	assert.Equal(t, 1500, cfg.LLM.MaxTokens)
	assert.Equal(t, "data/transcripts", cfg.Paths.Input)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}
