package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is one processing pass over a transcript.
type Run struct {
	ID         string
	Transcript string
	Project    string
	Mode       string
	Model      string
	CreatedAt  time.Time
}

// Answer is one question answered during a run.
type Answer struct {
	Seq      int64
	RunID    string
	Question string
	Answer   string
}

// EvaluationRecord is the summary of one rubric scoring pass.
type EvaluationRecord struct {
	RunID          string
	FinalScore     float64
	Performance    string
	RawScore       int
	MaxRawScore    int
	ForemanPresent bool
}

// Store persists run history so repeated transcripts can be audited later.
type Store interface {
	SaveRun(ctx context.Context, run Run) error
	SaveAnswer(ctx context.Context, answer Answer) error
	SaveEvaluation(ctx context.Context, record EvaluationRecord) error
	RunsForTranscript(ctx context.Context, transcript string) ([]Run, error)
	AnswersForRun(ctx context.Context, runID string) ([]Answer, error)
	Close() error
}

// NewRun builds a run record with a fresh identifier.
func NewRun(transcript, project, mode, model string) Run {
	return Run{
		ID:         uuid.NewString(),
		Transcript: transcript,
		Project:    project,
		Mode:       mode,
		Model:      model,
		CreatedAt:  time.Now(),
	}
}
