package rubric

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/transcript"
)

// Evaluate grades the document at documentPath against every rubric
// criterion, then runs foreman detection and derives insights.
// Per-criterion failures degrade to fallback scores so a long run
// never aborts partway through.
func (s *implScorer) Evaluate(ctx context.Context, documentPath string) (*Evaluation, error) {
	content, err := transcript.Load(documentPath)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{
		DocumentName:   filepath.Base(documentPath),
		ProjectName:    transcript.ExtractProjectName(content),
		EvaluationDate: time.Now().Format("2006-01-02"),
		ModelUsed:      s.model,
	}

	present, notes := s.detectForeman(ctx, content)
	eval.ForemanPresent = present
	eval.ForemanNotes = notes
	s.logger.Info(ctx, "Foreman detection: present=%v", present)

	for _, category := range Categories() {
		s.logger.Info(ctx, "Analyzing %s category (%d criteria)", category.Name, len(category.Criteria))
		result := CategoryResult{Name: category.Name}

		for _, crit := range category.Criteria {
			score := s.scoreCriterion(ctx, content, crit)
			s.logger.Info(ctx, "  %s: %d/%d", crit.Name, score.Points, score.MaxPoints)
			result.Criteria = append(result.Criteria, score)

			select {
			case <-time.After(s.requestDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		eval.Categories = append(eval.Categories, result)
	}

	eval.Strengths = identifyStrengths(eval)
	eval.Improvements = identifyImprovements(eval)
	eval.Recommendations = generateRecommendations(eval)

	return eval, nil
}

// scoreCriterion asks the model for one criterion score. Exhausted
// overload retries fall back to a flagged placeholder score instead of
// failing the whole evaluation.
func (s *implScorer) scoreCriterion(ctx context.Context, content string, crit Criterion) CriterionScore {
	response, err := s.client.Complete(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Prompt:      buildCriterionPrompt(crit, content),
		MaxTokens:   1000,
		Temperature: 0.1,
	})
	if err != nil {
		if errors.Is(err, llm.ErrOverloaded) {
			s.logger.Warn(ctx, "Criterion %q: API overloaded after retries, using fallback score", crit.Name)
			return fallbackScore(crit)
		}
		s.logger.Error(ctx, "Criterion %q: %v", crit.Name, err)
		return fallbackScore(crit)
	}

	return parseCriterionResponse(response, crit)
}

// fallbackScore mirrors the offline placeholder: 70% of maximum, never zero
func fallbackScore(crit Criterion) CriterionScore {
	points := int(float64(crit.MaxPoints) * 0.7)
	if points < 1 {
		points = 1
	}
	return CriterionScore{
		Name:               crit.Name,
		Points:             points,
		MaxPoints:          crit.MaxPoints,
		Description:        crit.Description,
		Justification:      "Fallback analysis - model unavailable after retries",
		SupportingEvidence: "",
	}
}

func (s *implScorer) detectForeman(ctx context.Context, content string) (bool, []string) {
	response, err := s.client.Complete(ctx, llm.Request{
		System:      foremanSystemPrompt,
		Prompt:      buildForemanPrompt(content),
		MaxTokens:   800,
		Temperature: 0.1,
	})
	if err != nil {
		s.logger.Error(ctx, "Foreman detection failed: %v", err)
		return false, []string{"Error occurred during analysis: " + err.Error()}
	}

	return parseForemanResponse(response)
}
