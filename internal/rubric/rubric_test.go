package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRubricShape(t *testing.T) {
	categories := Categories()
	require.Len(t, categories, 7)

	assert.Equal(t, 32, CriterionCount())

	rawMax := 0
	for _, cat := range categories {
		rawMax += cat.MaxScore()
	}
	assert.Equal(t, 180, rawMax)

	// Every criterion's components must sum to its stated maximum
	for _, cat := range categories {
		for _, crit := range cat.Criteria {
			sum := 0
			for _, comp := range crit.Components {
				sum += comp.Points
			}
			assert.Equal(t, crit.MaxPoints, sum, "%s / %s", cat.Name, crit.Name)
		}
	}
}

func TestParseCriterionResponse(t *testing.T) {
	crit := Criterion{Name: "Scope of Work", MaxPoints: 6, Description: "desc"}

	tests := []struct {
		name          string
		response      string
		wantPoints    int
		wantJustify   string
		wantEvidence  string
	}{
		{
			name:         "well formed",
			response:     "TOTAL_SCORE: 4\nJUSTIFICATION: Good specificity.\nSUPPORTING_EVIDENCE: \"quote\"",
			wantPoints:   4,
			wantJustify:  "Good specificity.",
			wantEvidence: `"quote"`,
		},
		{
			name:        "score above max is clamped",
			response:    "TOTAL_SCORE: 99\nJUSTIFICATION: Over-generous model.",
			wantPoints:  6,
			wantJustify: "Over-generous model.",
		},
		{
			name:        "missing marker scores zero",
			response:    "The document covers the scope well.",
			wantPoints:  0,
			wantJustify: "No score marker in model output; scored 0. No justification provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := parseCriterionResponse(tt.response, crit)
			assert.Equal(t, tt.wantPoints, score.Points)
			assert.Equal(t, 6, score.MaxPoints)
			assert.Equal(t, tt.wantJustify, score.Justification)
			if tt.wantEvidence != "" {
				assert.Equal(t, tt.wantEvidence, score.SupportingEvidence)
			}
		})
	}
}

func TestParseCriterionResponseNeverExceedsMax(t *testing.T) {
	for _, cat := range Categories() {
		for _, crit := range cat.Criteria {
			score := parseCriterionResponse("TOTAL_SCORE: 1000", crit)
			assert.LessOrEqual(t, score.Points, crit.MaxPoints, crit.Name)
		}
	}
}

func TestParseForemanResponse(t *testing.T) {
	present, notes := parseForemanResponse(
		"FOREMAN_PRESENT: YES\nCONFIDENCE: HIGH\nEVIDENCE: Mike discussed rigging.\nREASONING: Field expertise shown.")
	assert.True(t, present)
	require.Len(t, notes, 3)
	assert.Equal(t, "Confidence: HIGH", notes[0])
	assert.Equal(t, "Evidence: Mike discussed rigging.", notes[1])

	present, notes = parseForemanResponse("FOREMAN_PRESENT: NO\nCONFIDENCE: MEDIUM")
	assert.False(t, present)
	assert.Equal(t, "Confidence: MEDIUM", notes[0])
}

func TestEvaluationScoring(t *testing.T) {
	eval := Evaluation{
		Categories: []CategoryResult{
			{Name: "A", Criteria: []CriterionScore{
				{Points: 90, MaxPoints: 90},
			}},
			{Name: "B", Criteria: []CriterionScore{
				{Points: 0, MaxPoints: 90},
			}},
		},
		ForemanPresent: true,
	}

	assert.Equal(t, 90, eval.TotalRawScore())
	assert.Equal(t, 180, eval.MaxRawScore())
	assert.InDelta(t, 50.0, eval.ContentPercentage(), 0.001)
	assert.InDelta(t, 37.5, eval.ScaledContentScore(), 0.001)
	assert.InDelta(t, 25.0, eval.AttendanceScore(), 0.001)
	assert.InDelta(t, 62.5, eval.FinalScore(), 0.001)
	assert.Equal(t, "NEEDS IMPROVEMENT", eval.PerformanceLevel())

	eval.ForemanPresent = false
	assert.InDelta(t, 37.5, eval.FinalScore(), 0.001)
	assert.Equal(t, "UNSATISFACTORY", eval.PerformanceLevel())
}

func TestPerformanceLevels(t *testing.T) {
	mk := func(points int) Evaluation {
		// One criterion out of 100 raw, scaled is points*0.75
		return Evaluation{
			Categories: []CategoryResult{
				{Criteria: []CriterionScore{{Points: points, MaxPoints: 100}}},
			},
			ForemanPresent: true,
		}
	}

	assert.Equal(t, "EXCELLENT", mk(95).PerformanceLevel())    // 96.25
	assert.Equal(t, "GOOD", mk(75).PerformanceLevel())         // 81.25
	assert.Equal(t, "SATISFACTORY", mk(65).PerformanceLevel()) // 73.75
	assert.Equal(t, "UNSATISFACTORY", mk(20).PerformanceLevel())
}

func TestFallbackScore(t *testing.T) {
	score := fallbackScore(Criterion{Name: "x", MaxPoints: 6})
	assert.Equal(t, 4, score.Points)

	score = fallbackScore(Criterion{Name: "tiny", MaxPoints: 1})
	assert.Equal(t, 1, score.Points, "fallback never scores zero")
}

func TestInsights(t *testing.T) {
	eval := &Evaluation{
		Categories: []CategoryResult{
			{Name: "Safety", Criteria: []CriterionScore{{Name: "Site Conditions", Points: 6, MaxPoints: 6}}},
			{Name: "Scope", Criteria: []CriterionScore{{Name: "Scope of Work", Points: 0, MaxPoints: 6}}},
		},
	}

	strengths := identifyStrengths(eval)
	assert.Contains(t, strengths[0], "Safety")
	assert.Contains(t, strengths[1], "Site Conditions")

	improvements := identifyImprovements(eval)
	assert.Contains(t, improvements[0], "Scope")
	assert.Contains(t, improvements[1], "Scope of Work")

	recs := generateRecommendations(eval)
	assert.Contains(t, recs[0], "Immediate comprehensive review")
}
