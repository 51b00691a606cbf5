package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx/docx"

	"github.com/buildscope/handover-insight/internal/rubric"
)

// WriteEvaluationText writes a scoring report as plain text.
func WriteEvaluationText(path string, eval *rubric.Evaluation) error {
	var b strings.Builder

	b.WriteString("HANDOVER QUALITY EVALUATION\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Project: %s\n", eval.ProjectName)
	fmt.Fprintf(&b, "Document: %s\n", eval.DocumentName)
	fmt.Fprintf(&b, "Evaluated: %s\n", eval.EvaluationDate)
	fmt.Fprintf(&b, "Model: %s\n\n", eval.ModelUsed)

	fmt.Fprintf(&b, "FINAL SCORE: %.1f / 100 (%s)\n", eval.FinalScore(), eval.PerformanceLevel())
	fmt.Fprintf(&b, "  Content quality: %.1f / 75 (raw %d / %d)\n",
		eval.ScaledContentScore(), eval.TotalRawScore(), eval.MaxRawScore())
	fmt.Fprintf(&b, "  Foreman attendance: %.0f / 25\n\n", eval.AttendanceScore())

	b.WriteString("CATEGORY BREAKDOWN\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, cat := range eval.Categories {
		fmt.Fprintf(&b, "%s: %d / %d (%.0f%%)\n",
			cat.Name, cat.TotalScore(), cat.MaxScore(), cat.Percentage())
		for _, crit := range cat.Criteria {
			fmt.Fprintf(&b, "  %s: %d / %d\n", crit.Name, crit.Points, crit.MaxPoints)
			if crit.Justification != "" {
				fmt.Fprintf(&b, "    %s\n", crit.Justification)
			}
		}
	}
	b.WriteString("\n")

	writeTextSection(&b, "FOREMAN ATTENDANCE", eval.ForemanNotes)
	writeTextSection(&b, "STRENGTHS", eval.Strengths)
	writeTextSection(&b, "AREAS FOR IMPROVEMENT", eval.Improvements)
	writeTextSection(&b, "RECOMMENDATIONS", eval.Recommendations)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write evaluation report: %w", err)
	}
	return nil
}

func writeTextSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// WriteEvaluationDocx writes a scoring report as a styled Word document.
func WriteEvaluationDocx(path string, eval *rubric.Evaluation) error {
	doc, err := newReportDoc("Handover Quality Evaluation")
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for _, line := range []string{
		fmt.Sprintf("Project: %s", eval.ProjectName),
		fmt.Sprintf("Document: %s", eval.DocumentName),
		fmt.Sprintf("Evaluated: %s", eval.EvaluationDate),
		fmt.Sprintf("Model: %s", eval.ModelUsed),
	} {
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""),
		fmt.Sprintf("Final score: %.1f / 100 (%s)", eval.FinalScore(), eval.PerformanceLevel()), true, 15)
	addStyledRun(doc.AddParagraph(""),
		fmt.Sprintf("Content quality: %.1f / 75 (raw %d / %d)",
			eval.ScaledContentScore(), eval.TotalRawScore(), eval.MaxRawScore()), false, fontSize)
	addStyledRun(doc.AddParagraph(""),
		fmt.Sprintf("Foreman attendance: %.0f / 25", eval.AttendanceScore()), false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Category Breakdown", true, 15)
	for _, cat := range eval.Categories {
		addStyledRun(doc.AddParagraph(""),
			fmt.Sprintf("%s: %d / %d (%.0f%%)", cat.Name, cat.TotalScore(), cat.MaxScore(), cat.Percentage()),
			true, 14)
		for _, crit := range cat.Criteria {
			p := doc.AddParagraph("")
			addStyledRun(p, fmt.Sprintf("%s: %d / %d", crit.Name, crit.Points, crit.MaxPoints), false, fontSize)
			if crit.Justification != "" {
				addRichText(doc.AddParagraph(""), crit.Justification)
			}
		}
	}
	doc.AddParagraph("")

	writeDocxSection(doc, "Foreman Attendance", eval.ForemanNotes)
	writeDocxSection(doc, "Strengths", eval.Strengths)
	writeDocxSection(doc, "Areas for Improvement", eval.Improvements)
	writeDocxSection(doc, "Recommendations", eval.Recommendations)

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save evaluation report: %w", err)
	}
	return nil
}

func writeDocxSection(doc *docx.RootDoc, title string, items []string) {
	if len(items) == 0 {
		return
	}
	addStyledRun(doc.AddParagraph(""), title, true, 15)
	for _, item := range items {
		addRichText(doc.AddParagraph(""), "• "+item)
	}
	doc.AddParagraph("")
}
