package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildscope/handover-insight/internal/logger"
	"github.com/buildscope/handover-insight/internal/rubric"
	"github.com/buildscope/handover-insight/internal/store"
)

func sampleEvaluation() *rubric.Evaluation {
	return &rubric.Evaluation{
		DocumentName:   "meeting.txt",
		ProjectName:    "Riverside Tower",
		EvaluationDate: "2026-08-30",
		ModelUsed:      "mock:mock",
		Categories: []rubric.CategoryResult{
			{
				Name: "Safety Requirements",
				Criteria: []rubric.CriterionScore{
					{Name: "Fall Protection", Points: 4, MaxPoints: 5},
				},
			},
		},
		ForemanPresent: true,
	}
}

func TestPersistEvaluation(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	persistEvaluation(ctx, st, sampleEvaluation(), logger.New("error"))

	runs, err := st.RunsForTranscript(ctx, "meeting.txt")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "score", runs[0].Mode)
	assert.Equal(t, "Riverside Tower", runs[0].Project)
}

// failingRunStore rejects SaveRun so the evaluation must not be written.
type failingRunStore struct {
	store.Store
	evaluationSaved bool
}

func (s *failingRunStore) SaveRun(ctx context.Context, run store.Run) error {
	return errors.New("disk full")
}

func (s *failingRunStore) SaveEvaluation(ctx context.Context, record store.EvaluationRecord) error {
	s.evaluationSaved = true
	return nil
}

func TestPersistEvaluationRunFailure(t *testing.T) {
	st := &failingRunStore{}
	persistEvaluation(context.Background(), st, sampleEvaluation(), logger.New("error"))
	assert.False(t, st.evaluationSaved)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b,"))
	assert.Nil(t, splitList(""))
}
