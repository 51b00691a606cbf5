package rubric

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/logger"
)

type scriptedClient struct {
	criterionResponse string
	foremanResponse   string
}

func (c *scriptedClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	if req.System == foremanSystemPrompt {
		return c.foremanResponse, nil
	}
	return c.criterionResponse, nil
}

func testConfig() *config.Config {
	return &config.Config{
		LLM:         config.LLMConfig{Provider: "mock", Model: "test-model"},
		Performance: config.PerformanceConfig{RequestDelay: time.Millisecond},
	}
}

func TestEvaluate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handoff.txt")
	content := "Project Name: Riverside Tower\nMike Scott  0:13\nThe foreman walked the site."
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	client := &scriptedClient{
		criterionResponse: "TOTAL_SCORE: 3\nJUSTIFICATION: Reasonable detail.\nSUPPORTING_EVIDENCE: \"walked the site\"",
		foremanResponse:   "FOREMAN_PRESENT: YES\nCONFIDENCE: HIGH\nEVIDENCE: site walk\nREASONING: field input",
	}

	scorer := New(client, testConfig(), logger.New("error"))
	eval, err := scorer.Evaluate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "handoff.txt", eval.DocumentName)
	assert.Equal(t, "Riverside Tower", eval.ProjectName)
	assert.Equal(t, "mock:test-model", eval.ModelUsed)
	assert.True(t, eval.ForemanPresent)

	require.Len(t, eval.Categories, 7)
	assert.Equal(t, 32*3, eval.TotalRawScore())
	assert.Equal(t, 180, eval.MaxRawScore())
	assert.NotEmpty(t, eval.Strengths)
	assert.NotEmpty(t, eval.Improvements)
	assert.NotEmpty(t, eval.Recommendations)
}

func TestEvaluateMissingDocument(t *testing.T) {
	scorer := New(llm.NewMock(), testConfig(), logger.New("error"))
	_, err := scorer.Evaluate(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
