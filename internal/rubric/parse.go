package rubric

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reTotalScore = regexp.MustCompile(`TOTAL_SCORE:\s*(\d+)`)
	reJustify    = regexp.MustCompile(`(?s)JUSTIFICATION:\s*(.*?)(?:SUPPORTING_EVIDENCE:|$)`)
	reEvidence   = regexp.MustCompile(`(?s)SUPPORTING_EVIDENCE:\s*(.*)$`)

	reForemanEvidence   = regexp.MustCompile(`(?s)EVIDENCE:\s*(.*?)(?:REASONING:|$)`)
	reForemanReasoning  = regexp.MustCompile(`(?s)REASONING:\s*(.*)$`)
	reForemanConfidence = regexp.MustCompile(`(?i)CONFIDENCE:\s*(\w+)`)
)

// parseCriterionResponse extracts the awarded score and justification
// from free-form model output. Awarded points never exceed the
// criterion maximum, and a missing score marker scores zero.
func parseCriterionResponse(text string, crit Criterion) CriterionScore {
	score := 0
	if m := reTotalScore.FindStringSubmatch(text); m != nil {
		score, _ = strconv.Atoi(m[1])
	}
	if score > crit.MaxPoints {
		score = crit.MaxPoints
	}
	if score < 0 {
		score = 0
	}

	justification := "No justification provided"
	if m := reJustify.FindStringSubmatch(text); m != nil {
		if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
			justification = trimmed
		}
	}
	if reTotalScore.FindStringSubmatch(text) == nil {
		justification = "No score marker in model output; scored 0. " + justification
	}

	evidence := ""
	if m := reEvidence.FindStringSubmatch(text); m != nil {
		evidence = strings.TrimSpace(m[1])
	}

	return CriterionScore{
		Name:               crit.Name,
		Points:             score,
		MaxPoints:          crit.MaxPoints,
		Description:        crit.Description,
		Justification:      justification,
		SupportingEvidence: evidence,
	}
}

// parseForemanResponse extracts the attendance verdict and the
// supporting notes shown in the evaluation report.
func parseForemanResponse(text string) (bool, []string) {
	upper := strings.ToUpper(text)
	present := strings.Contains(upper, "FOREMAN_PRESENT:") && strings.Contains(upper, "YES")

	evidence := "No evidence extracted"
	if m := reForemanEvidence.FindStringSubmatch(text); m != nil {
		if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
			evidence = trimmed
		}
	}

	reasoning := "No reasoning provided"
	if m := reForemanReasoning.FindStringSubmatch(text); m != nil {
		if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
			reasoning = trimmed
		}
	}

	confidence := "UNKNOWN"
	if m := reForemanConfidence.FindStringSubmatch(text); m != nil {
		confidence = strings.ToUpper(m[1])
	}

	notes := []string{
		"Confidence: " + confidence,
		"Evidence: " + clip(evidence, 100),
		"Reasoning: " + clip(reasoning, 100),
	}

	return present, notes
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
