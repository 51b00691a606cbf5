package compare

import (
	"regexp"
	"strings"
)

// AnswerMetrics holds the ad hoc quality signals computed for one answer
type AnswerMetrics struct {
	CharCount      int `json:"char_count"`
	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`
	QuoteCount     int `json:"quote_count"`

	HasSynthesis            bool    `json:"has_synthesis"`
	SynthesisScore          float64 `json:"synthesis_score"`
	HasContextBeforeQuotes  bool    `json:"has_context_before_quotes"`
	HasClarificationSection bool    `json:"has_clarification_section"`
	HasSpeakerAttribution   bool    `json:"has_speaker_attribution"`
	ProfessionalLanguage    bool    `json:"professional_language"`

	QualityScore    float64 `json:"quality_score"`
	ResponseSeconds float64 `json:"response_time,omitempty"`
	EstimatedCost   float64 `json:"estimated_cost,omitempty"`
}

var (
	reQuote = regexp.MustCompile(`"[^"]+?"`)

	attributionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\w+\s+(?:stated|mentioned|noted|confirmed|said):`),
		regexp.MustCompile(`"[^"]+?".*?-\s*\w+`),
	}

	clarificationKeywords = []string{
		"requiring clarification", "items requiring", "need to confirm",
		"follow up with", "clarify with",
	}

	simplePhrases = []string{
		"this means that", "in other words", "basically", "simply put",
	}
)

// EvaluateAnswer computes quality metrics for a model answer.
// The weighting favors synthesis over bare quote dumps.
func EvaluateAnswer(answer, question string) AnswerMetrics {
	paragraphs := splitParagraphs(answer)

	m := AnswerMetrics{
		CharCount:      len(answer),
		WordCount:      len(strings.Fields(answer)),
		ParagraphCount: len(paragraphs),
		QuoteCount:     len(reQuote.FindAllString(answer, -1)),
	}

	// Synthesis: paragraphs that carry both explanation and a quote
	synthesisParagraphs := 0
	for _, para := range paragraphs {
		if len(para) > 100 && strings.Contains(para, `"`) {
			synthesisParagraphs++
		}
	}
	m.HasSynthesis = synthesisParagraphs >= 1
	if len(paragraphs) > 0 {
		m.SynthesisScore = float64(synthesisParagraphs) / float64(len(paragraphs))
	}

	firstQuote := strings.Index(answer, `"`)
	m.HasContextBeforeQuotes = firstQuote == -1 || firstQuote > 50

	lower := strings.ToLower(answer)
	for _, kw := range clarificationKeywords {
		if strings.Contains(lower, kw) {
			m.HasClarificationSection = true
			break
		}
	}

	for _, pattern := range attributionPatterns {
		if pattern.MatchString(answer) {
			m.HasSpeakerAttribution = true
			break
		}
	}

	m.ProfessionalLanguage = true
	for _, phrase := range simplePhrases {
		if strings.Contains(lower, phrase) {
			m.ProfessionalLanguage = false
			break
		}
	}

	m.QualityScore = boolWeight(m.HasSynthesis, 0.3) +
		boolWeight(m.HasContextBeforeQuotes, 0.2) +
		boolWeight(m.HasSpeakerAttribution, 0.2) +
		boolWeight(m.ProfessionalLanguage, 0.1) +
		quoteWeight(m.QuoteCount)
	if strings.Contains(question, "?") {
		m.QualityScore += boolWeight(m.HasClarificationSection, 0.1)
	}

	return m
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) != "" {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}

func boolWeight(b bool, weight float64) float64 {
	if b {
		return weight
	}
	return 0
}

// Three supporting quotes is considered full marks
func quoteWeight(quotes int) float64 {
	ratio := float64(quotes) / 3
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 0.1
}
