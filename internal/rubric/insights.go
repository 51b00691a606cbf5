package rubric

import (
	"fmt"
	"strings"
)

func identifyStrengths(eval *Evaluation) []string {
	var strengths []string

	var highPerformers []string
	for _, cat := range eval.Categories {
		if cat.Percentage() >= 80 {
			highPerformers = append(highPerformers, cat.Name)
		}
	}
	if len(highPerformers) > 0 {
		strengths = append(strengths, "Strong performance in "+strings.Join(highPerformers, ", "))
	}

	var perfect []string
	for _, cat := range eval.Categories {
		for _, crit := range cat.Criteria {
			if crit.Points == crit.MaxPoints {
				perfect = append(perfect, crit.Name)
			}
		}
	}
	if len(perfect) > 0 {
		if len(perfect) > 3 {
			perfect = perfect[:3]
		}
		strengths = append(strengths, "Perfect scores achieved in: "+strings.Join(perfect, ", "))
	}

	if len(strengths) == 0 {
		strengths = append(strengths, fmt.Sprintf("Analysis completed across all %d criteria", CriterionCount()))
	}

	return strengths
}

func identifyImprovements(eval *Evaluation) []string {
	var improvements []string

	var lowPerformers []string
	for _, cat := range eval.Categories {
		if cat.Percentage() < 60 {
			lowPerformers = append(lowPerformers, cat.Name)
		}
	}
	if len(lowPerformers) > 0 {
		improvements = append(improvements, "Significant improvement needed in "+strings.Join(lowPerformers, ", "))
	}

	var zeroes []string
	for _, cat := range eval.Categories {
		for _, crit := range cat.Criteria {
			if crit.Points == 0 {
				zeroes = append(zeroes, crit.Name)
			}
		}
	}
	if len(zeroes) > 0 {
		if len(zeroes) > 3 {
			zeroes = zeroes[:3]
		}
		improvements = append(improvements, "Critical gaps identified in: "+strings.Join(zeroes, ", "))
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Continue maintaining current quality standards across all criteria")
	}

	return improvements
}

func generateRecommendations(eval *Evaluation) []string {
	recommendations := []string{
		"Develop comprehensive handover procedures covering every rubric criterion",
		"Create detailed checklists for each criterion to ensure complete coverage",
		"Establish regular review cycles to maintain document quality",
		"Implement cross-functional review process for complex projects",
		"Focus on providing specific, concrete details rather than generic responses",
	}

	if eval.FinalScore() < 70 {
		recommendations = append(
			[]string{"Immediate comprehensive review and enhancement required across all criteria"},
			recommendations...,
		)
	}

	return recommendations
}
