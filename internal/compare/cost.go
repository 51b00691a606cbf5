package compare

import "strings"

// Published per-million-token rates, used only for rough run budgeting.
// Token counts are approximated as characters/4.
type modelRates struct {
	inputPerMTok  float64
	outputPerMTok float64
}

var knownRates = map[string]modelRates{
	"claude-3-opus":     {inputPerMTok: 15.0, outputPerMTok: 75.0},
	"claude-3-5-sonnet": {inputPerMTok: 3.0, outputPerMTok: 15.0},
	"gpt-4o":            {inputPerMTok: 2.5, outputPerMTok: 10.0},
	"gpt-4o-mini":       {inputPerMTok: 0.15, outputPerMTok: 0.6},
}

// estimateCost approximates the dollar cost of one call.
// Unknown models cost zero rather than guessing.
func estimateCost(model string, promptChars, answerChars int) float64 {
	var rates modelRates
	found := false
	for prefix, r := range knownRates {
		if strings.HasPrefix(model, prefix) {
			rates = r
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	inputTokens := float64(promptChars) / 4
	outputTokens := float64(answerChars) / 4
	return inputTokens/1e6*rates.inputPerMTok + outputTokens/1e6*rates.outputPerMTok
}
