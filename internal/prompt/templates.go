package prompt

import (
	"fmt"
	"strings"
)

// Variant name constants.
// Use these instead of string literals for compile-time safety.
const (
	VariantProfessionalSynthesis  = "professional_synthesis"
	VariantStructuredProfessional = "structured_professional"
	VariantEnhancedFinal          = "enhanced_final"
	VariantRoleBased              = "role_based"
	VariantStructured             = "structured"
)

// DefaultVariant is the production prompt selected by comparison runs
const DefaultVariant = VariantEnhancedFinal

// variantOrder defines the canonical order for VariantNames()
var variantOrder = []string{
	VariantProfessionalSynthesis,
	VariantStructuredProfessional,
	VariantEnhancedFinal,
	VariantRoleBased,
	VariantStructured,
}

var variants = map[string]string{
	VariantProfessionalSynthesis:  professionalSynthesisPrompt,
	VariantStructuredProfessional: structuredProfessionalPrompt,
	VariantEnhancedFinal:          enhancedFinalPrompt,
	VariantRoleBased:              roleBasedPrompt,
	VariantStructured:             structuredPrompt,
}

// SystemPrompt frames every transcript analysis request
const SystemPrompt = `You are an expert transcript analyst specializing in construction project handover meetings.

Key principles:
- Provide professional-level analysis (assume readers understand construction)
- Quote directly from the transcript to support all claims
- Synthesize information clearly before presenting evidence
- Only suggest follow-ups for genuinely unclear contract/spec items
- Keep responses concise but comprehensive`

// Render substitutes transcript and question into the named variant.
// Pure string formatting: same inputs always produce the same prompt.
func Render(variant, transcript, question string) (string, error) {
	template, ok := variants[variant]
	if !ok {
		return "", fmt.Errorf("unknown prompt variant %q", variant)
	}

	prompt := strings.ReplaceAll(template, "{transcript}", transcript)
	prompt = strings.ReplaceAll(prompt, "{question}", question)
	return prompt, nil
}

// VariantNames returns the available variant names in stable order
func VariantNames() []string {
	result := make([]string, len(variantOrder))
	copy(result, variantOrder)
	return result
}

const professionalSynthesisPrompt = `You are a senior PM analyzing this handover transcript:

{transcript}

For the question below, provide a professional analysis that:
1. Synthesizes findings into clear statements (not just listing quotes)
2. Supports each finding with evidence: "Speaker: 'exact quote'"
3. Concludes with specific items requiring clarification if applicable

Write naturally - combine related points and explain implications where helpful.

Question: {question}
Answer:`

const structuredProfessionalPrompt = `Handover Analysis:

{transcript}

Analyze the above transcript and answer the following question with:
- Clear synthesis of what was discussed (with context)
- Supporting quotes: "Speaker: 'exact quote'" integrated naturally
- Brief "Items requiring clarification:" section if gaps exist

Question: {question}
Answer:`

const enhancedFinalPrompt = `As a senior project manager, analyze this handover transcript:

{transcript}

Provide a comprehensive answer that construction teams can act on:
- Present findings as clear paragraphs explaining what was determined
- Support key points with quotes: "Speaker: 'exact quote'"
- For complex topics, explain implications briefly
- End with "Items requiring clarification with [relevant party]:" if needed

Keep the tone professional and avoid over-explaining basic concepts.

Question: {question}
Answer:`

const roleBasedPrompt = `You are a senior project manager preparing your team for this project.

{transcript}

Analyze the handover meeting and provide actionable information.

Please structure your answer using *exactly* these sections:
1. Expert interpretation - concise statements explaining what was determined
2. Supporting quotes - each on a new line, formatted as "Speaker: 'exact quote'"
3. Professional summary - bullet list of any gaps, next steps, or items needing clarification

Focus on what the construction team needs to execute successfully.

Question: {question}
Answer:`

const structuredPrompt = `Transcript of a construction handover meeting:

{transcript}

Answer the question using only information from the transcript. Quote the
relevant speakers verbatim, then state what remains unclear.

Question: {question}
Answer:`
