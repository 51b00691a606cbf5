package report

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// QA is one answered question from an analysis run.
type QA struct {
	Question string
	Answer   string
}

// AnalysisReport carries everything the answer writers need.
type AnalysisReport struct {
	TranscriptName string
	ProjectName    string
	Model          string
	Speakers       []string
	Answers        []QA
}

// WriteAnswersText writes the Q&A report as plain text.
func WriteAnswersText(path string, r *AnalysisReport) error {
	var b strings.Builder

	b.WriteString("HANDOVER MEETING ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Project: %s\n", r.ProjectName)
	fmt.Fprintf(&b, "Transcript: %s\n", r.TranscriptName)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Model: %s\n", r.Model)
	if len(r.Speakers) > 0 {
		fmt.Fprintf(&b, "Attendees: %s\n", strings.Join(r.Speakers, ", "))
	}
	b.WriteString("\n")

	for i, qa := range r.Answers {
		fmt.Fprintf(&b, "QUESTION %d: %s\n\n", i+1, qa.Question)
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(qa.Answer))
		b.WriteString(strings.Repeat("-", 60) + "\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}

// WriteAnswersDocx writes the Q&A report as a styled Word document.
func WriteAnswersDocx(path string, r *AnalysisReport) error {
	doc, err := newReportDoc("Handover Meeting Analysis")
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	p := doc.AddParagraph("")
	addStyledRun(p, fmt.Sprintf("Project: %s", r.ProjectName), false, fontSize)
	p = doc.AddParagraph("")
	addStyledRun(p, fmt.Sprintf("Transcript: %s", r.TranscriptName), false, fontSize)
	p = doc.AddParagraph("")
	addStyledRun(p, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), false, fontSize)
	if len(r.Speakers) > 0 {
		p = doc.AddParagraph("")
		addStyledRun(p, fmt.Sprintf("Attendees: %s", strings.Join(r.Speakers, ", ")), false, fontSize)
	}
	doc.AddParagraph("")

	for i, qa := range r.Answers {
		p = doc.AddParagraph("")
		addStyledRun(p, fmt.Sprintf("Question %d: %s", i+1, qa.Question), true, 14)
		addBody(doc, qa.Answer)
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
