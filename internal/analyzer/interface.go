package analyzer

import "context"

// Result summarizes one completed analysis run.
type Result struct {
	RunID      string
	Transcript string
	Project    string
	Speakers   []string
	Answered   int
	Failed     int
	TextPath   string
	DocxPath   string
}

// Analyzer answers the question list against a transcript and writes
// the reports.
type Analyzer interface {
	Analyze(ctx context.Context, transcriptPath string) (*Result, error)
}
