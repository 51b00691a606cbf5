package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/logger"
	"github.com/buildscope/handover-insight/internal/prompt"
)

// AnswerRecord is one question answered under one variant or model
type AnswerRecord struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer,omitempty"`
	Error    string        `json:"error,omitempty"`
	Metrics  AnswerMetrics `json:"metrics"`
}

// CandidateResult aggregates a variant's (or model's) answers
type CandidateResult struct {
	Name           string         `json:"name"`
	Model          string         `json:"model,omitempty"`
	Answers        []AnswerRecord `json:"answers"`
	AverageQuality float64        `json:"average_quality"`
}

// Comparison ranks prompt variants or models against each other
type Comparison struct {
	Transcript string            `json:"transcript"`
	RunDate    string            `json:"run_date"`
	Results    []CandidateResult `json:"results"`
	Best       string            `json:"recommended"`
}

type implComparer struct {
	client llm.Client
	delay  time.Duration
	logger logger.Logger
}

// Comparer runs the same questions through competing prompt variants
// or models and ranks them by average answer quality
type Comparer interface {
	CompareVariants(ctx context.Context, transcriptName, transcriptText string, questions, variants []string) (*Comparison, error)
	CompareModels(ctx context.Context, transcriptName, transcriptText string, questions, models []string) (*Comparison, error)
}

// New creates a Comparer using the given LLM client
func New(client llm.Client, delay time.Duration, log logger.Logger) Comparer {
	return &implComparer{client: client, delay: delay, logger: log}
}

// CompareVariants runs each prompt variant over the sample questions
func (c *implComparer) CompareVariants(ctx context.Context, transcriptName, transcriptText string, questions, variants []string) (*Comparison, error) {
	if len(variants) == 0 {
		variants = prompt.VariantNames()
	}

	comparison := &Comparison{
		Transcript: transcriptName,
		RunDate:    time.Now().Format("2006-01-02 15:04"),
	}

	for _, variant := range variants {
		c.logger.Info(ctx, "Testing prompt variant: %s", variant)

		result := CandidateResult{Name: variant}
		for _, question := range questions {
			record := c.ask(ctx, variant, "", transcriptText, question)
			result.Answers = append(result.Answers, record)

			if err := c.pause(ctx); err != nil {
				return nil, err
			}
		}

		result.AverageQuality = averageQuality(result.Answers)
		c.logger.Info(ctx, "  Average quality: %.2f", result.AverageQuality)
		comparison.Results = append(comparison.Results, result)
	}

	comparison.Best = pickBest(comparison.Results)
	return comparison, nil
}

// CompareModels runs the default prompt variant against each model
func (c *implComparer) CompareModels(ctx context.Context, transcriptName, transcriptText string, questions, models []string) (*Comparison, error) {
	comparison := &Comparison{
		Transcript: transcriptName,
		RunDate:    time.Now().Format("2006-01-02 15:04"),
	}

	for _, model := range models {
		c.logger.Info(ctx, "Testing model: %s", model)

		result := CandidateResult{Name: model, Model: model}
		for _, question := range questions {
			record := c.ask(ctx, prompt.DefaultVariant, model, transcriptText, question)
			result.Answers = append(result.Answers, record)

			if err := c.pause(ctx); err != nil {
				return nil, err
			}
		}

		result.AverageQuality = averageQuality(result.Answers)
		c.logger.Info(ctx, "  Average quality: %.2f", result.AverageQuality)
		comparison.Results = append(comparison.Results, result)
	}

	comparison.Best = pickBest(comparison.Results)
	return comparison, nil
}

func (c *implComparer) ask(ctx context.Context, variant, model, transcriptText, question string) AnswerRecord {
	record := AnswerRecord{Question: question}

	rendered, err := prompt.Render(variant, transcriptText, question)
	if err != nil {
		record.Error = err.Error()
		return record
	}

	start := time.Now()
	answer, err := c.client.Complete(ctx, llm.Request{
		System:      prompt.SystemPrompt,
		Prompt:      rendered,
		Model:       model,
		Temperature: 0.4,
	})
	if err != nil {
		c.logger.Error(ctx, "Question failed: %v", err)
		record.Error = err.Error()
		return record
	}

	record.Answer = answer
	record.Metrics = EvaluateAnswer(answer, question)
	record.Metrics.ResponseSeconds = time.Since(start).Seconds()
	if model != "" {
		record.Metrics.EstimatedCost = estimateCost(model, len(rendered), len(answer))
	}

	return record
}

func (c *implComparer) pause(ctx context.Context) error {
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func averageQuality(answers []AnswerRecord) float64 {
	var total float64
	var scored int
	for _, a := range answers {
		if a.Error == "" {
			total += a.Metrics.QualityScore
			scored++
		}
	}
	if scored == 0 {
		return 0
	}
	return total / float64(scored)
}

func pickBest(results []CandidateResult) string {
	best := ""
	bestScore := -1.0
	for _, r := range results {
		if r.AverageQuality > bestScore {
			best = r.Name
			bestScore = r.AverageQuality
		}
	}
	return best
}

// WriteJSON saves the comparison with all per-question metrics
func WriteJSON(path string, comparison *Comparison) error {
	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal comparison: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
