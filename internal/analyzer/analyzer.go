package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/prompt"
	"github.com/buildscope/handover-insight/internal/report"
	"github.com/buildscope/handover-insight/internal/store"
	"github.com/buildscope/handover-insight/internal/transcript"
)

// Analyze loads the transcript and the question list, asks the model
// every question, and writes the text and docx reports. A failed
// question becomes an ERROR line in the report instead of aborting the
// run.
func (a *implAnalyzer) Analyze(ctx context.Context, transcriptPath string) (*Result, error) {
	content, err := transcript.Load(transcriptPath)
	if err != nil {
		return nil, err
	}

	questions, err := transcript.LoadQuestions(a.questionsPath)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in %s", a.questionsPath)
	}

	result := &Result{
		Transcript: filepath.Base(transcriptPath),
		Project:    transcript.ExtractProjectName(content),
		Speakers:   transcript.ConfirmedSpeakers(content),
	}

	a.logger.Info(ctx, "Analyzing %s (project %q, %d questions, %d confirmed speakers)",
		result.Transcript, result.Project, len(questions), len(result.Speakers))

	run := store.NewRun(result.Transcript, result.Project, "answer", a.model)
	if a.store != nil {
		if err := a.store.SaveRun(ctx, run); err != nil {
			a.logger.Warn(ctx, "History not recorded: %v", err)
		} else {
			result.RunID = run.ID
		}
	}

	answers := make([]report.QA, 0, len(questions))
	for i, question := range questions {
		a.logger.Info(ctx, "[%d/%d] %s", i+1, len(questions), question)

		answer := a.ask(ctx, content, question)
		if strings.HasPrefix(answer, "ERROR:") {
			result.Failed++
		} else {
			result.Answered++
		}
		answers = append(answers, report.QA{Question: question, Answer: answer})

		if result.RunID != "" {
			if err := a.store.SaveAnswer(ctx, store.Answer{RunID: run.ID, Question: question, Answer: answer}); err != nil {
				a.logger.Warn(ctx, "Answer not recorded: %v", err)
			}
		}

		select {
		case <-time.After(a.requestDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := a.writeReports(result, answers); err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Analysis complete: %d answered, %d failed", result.Answered, result.Failed)
	return result, nil
}

func (a *implAnalyzer) ask(ctx context.Context, content, question string) string {
	rendered, err := prompt.Render(a.variant, content, question)
	if err != nil {
		return "ERROR: " + err.Error()
	}

	answer, err := a.client.Complete(ctx, llm.Request{
		System:      prompt.SystemPrompt,
		Prompt:      rendered,
		Temperature: 0.3,
	})
	if err != nil {
		a.logger.Error(ctx, "Question failed: %v", err)
		return "ERROR: " + err.Error()
	}

	return answer
}

func (a *implAnalyzer) writeReports(result *Result, answers []report.QA) error {
	if err := os.MkdirAll(a.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(result.Transcript, filepath.Ext(result.Transcript))
	r := &report.AnalysisReport{
		TranscriptName: result.Transcript,
		ProjectName:    result.Project,
		Model:          a.model,
		Speakers:       result.Speakers,
		Answers:        answers,
	}

	result.TextPath = filepath.Join(a.outputDir, base+"_analysis.txt")
	if err := report.WriteAnswersText(result.TextPath, r); err != nil {
		return err
	}

	result.DocxPath = filepath.Join(a.outputDir, base+"_analysis.docx")
	if err := report.WriteAnswersDocx(result.DocxPath, r); err != nil {
		return err
	}

	return nil
}
