package rubric

import (
	"fmt"
	"strings"
)

const (
	criterionExcerptLimit = 4000
	foremanExcerptLimit   = 2000
)

const analysisSystemPrompt = "You are an expert project management analyst evaluating handoff documents against specific criteria."

const foremanSystemPrompt = "You are an expert construction project analyst who can identify team roles and participation based on meeting content."

// buildCriterionPrompt builds the scoring prompt for one criterion
func buildCriterionPrompt(crit Criterion, document string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Analyze the following project handoff document against this specific criterion:

CRITERION: %s
DESCRIPTION: %s
MAX POINTS: %d

SCORING BREAKDOWN:
`, crit.Name, crit.Description, crit.MaxPoints)

	for _, comp := range crit.Components {
		fmt.Fprintf(&b, "- %s (%d pts): %s\n", comp.Name, comp.Points, comp.Guide)
	}

	fmt.Fprintf(&b, `
DOCUMENT TO ANALYZE:
%s

EVALUATION FOCUS:
- Reward SPECIFIC details: proper nouns, exact dates, quantities, dollar amounts
- Penalize GENERIC responses: "standard materials", "typical process", "will coordinate"
- Look for PROJECT-SPECIFIC information rather than templated language
- Evidence of actual preparation vs. form completion
- Apply the "Universal Check" - look for 2+ concrete details vs vague statements

Please provide your analysis in this exact format:
TOTAL_SCORE: [number out of %d]
JUSTIFICATION: [detailed explanation focusing on specificity vs. generic content]
SUPPORTING_EVIDENCE: [specific quotes or references from the document]

Focus on rewarding concrete, project-specific details and penalizing vague, generic responses.
`, truncate(document, criterionExcerptLimit), crit.MaxPoints)

	return b.String()
}

// buildForemanPrompt builds the attendance-detection prompt
func buildForemanPrompt(document string) string {
	return fmt.Sprintf(`Analyze this project handoff meeting transcript to determine if a FOREMAN was present and participating.

A foreman is typically:
- The field supervisor or construction lead
- Someone who provides installation insights, field experience, or practical input
- Someone who discusses field conditions, equipment needs, or installation challenges
- Someone who gives feedback on constructability or field execution

Look for evidence such as:
- Someone providing field/installation expertise or suggestions
- Discussion of field conditions, access, equipment needs from someone with hands-on experience
- Practical input about installation challenges, safety, or site logistics
- Someone asking/answering questions about actual construction execution
- References to someone who will be managing the field work

TRANSCRIPT TO ANALYZE:
%s

Provide your assessment in this exact format:
FOREMAN_PRESENT: [YES or NO]
CONFIDENCE: [LOW, MEDIUM, HIGH]
EVIDENCE: [specific quotes or observations that support your determination]
REASONING: [explain why you believe a foreman was or wasn't present]

Focus on the ROLE and CONTRIBUTIONS rather than job titles or names.
`, truncate(document, foremanExcerptLimit))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
