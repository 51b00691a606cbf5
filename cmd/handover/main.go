package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/buildscope/handover-insight/internal/analyzer"
	"github.com/buildscope/handover-insight/internal/compare"
	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/logger"
	"github.com/buildscope/handover-insight/internal/report"
	"github.com/buildscope/handover-insight/internal/rubric"
	"github.com/buildscope/handover-insight/internal/store"
	"github.com/buildscope/handover-insight/internal/transcript"
	"github.com/buildscope/handover-insight/internal/watcher"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the configuration file")
		mode       = flag.String("mode", "answer", "answer | score | compare | speakers | watch")
		file       = flag.String("file", "", "transcript file to process (answer, score, compare, speakers)")
		models     = flag.String("models", "", "comma-separated model list for compare mode; empty compares prompt variants")
		limit      = flag.Int("limit", 3, "number of questions used in compare mode")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Handover Insight (%s mode)", *mode)
	log.Info(ctx, "Provider: %s, model: %s", cfg.LLM.Provider, cfg.LLM.Model)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	switch *mode {
	case "answer":
		err = runAnswer(ctx, cfg, log, *file)
	case "score":
		err = runScore(ctx, cfg, log, *file)
	case "compare":
		err = runCompare(ctx, cfg, log, *file, *models, *limit)
	case "speakers":
		err = runSpeakers(*file)
	case "watch":
		err = runWatch(ctx, cfg, log)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil && err != context.Canceled {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

func requireFile(file string) error {
	if file == "" {
		return fmt.Errorf("-file is required for this mode")
	}
	if !transcript.IsTranscriptFile(file) {
		return fmt.Errorf("unsupported transcript format: %s", file)
	}
	return nil
}

func newClient(cfg *config.Config, log logger.Logger) (llm.Client, error) {
	return llm.New(cfg.LLM, cfg.Retry, log)
}

func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) store.Store {
	st, err := store.New(cfg.Paths.Database)
	if err != nil {
		log.Warn(ctx, "Run history disabled: %v", err)
		return nil
	}
	return st
}

func runAnswer(ctx context.Context, cfg *config.Config, log logger.Logger, file string) error {
	if err := requireFile(file); err != nil {
		return err
	}

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	st := openStore(ctx, cfg, log)
	if st != nil {
		defer st.Close()
	}

	result, err := analyzer.New(client, st, cfg, log).Analyze(ctx, file)
	if err != nil {
		return err
	}

	log.Info(ctx, "Reports written: %s, %s", result.TextPath, result.DocxPath)
	return nil
}

func runScore(ctx context.Context, cfg *config.Config, log logger.Logger, file string) error {
	if err := requireFile(file); err != nil {
		return err
	}

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	eval, err := rubric.New(client, cfg, log).Evaluate(ctx, file)
	if err != nil {
		return err
	}

	log.Info(ctx, "Final score: %.1f / 100 (%s)", eval.FinalScore(), eval.PerformanceLevel())

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(eval.DocumentName, filepath.Ext(eval.DocumentName))
	textPath := filepath.Join(cfg.Paths.Output, base+"_evaluation.txt")
	if err := report.WriteEvaluationText(textPath, eval); err != nil {
		return err
	}
	docxPath := filepath.Join(cfg.Paths.Output, base+"_evaluation.docx")
	if err := report.WriteEvaluationDocx(docxPath, eval); err != nil {
		return err
	}
	log.Info(ctx, "Reports written: %s, %s", textPath, docxPath)

	if st := openStore(ctx, cfg, log); st != nil {
		defer st.Close()
		persistEvaluation(ctx, st, eval, log)
	}

	return nil
}

// persistEvaluation records the scoring run in history. Failures are
// logged rather than failing the run, since the reports already exist.
func persistEvaluation(ctx context.Context, st store.Store, eval *rubric.Evaluation, log logger.Logger) {
	run := store.NewRun(eval.DocumentName, eval.ProjectName, "score", eval.ModelUsed)
	if err := st.SaveRun(ctx, run); err != nil {
		log.Warn(ctx, "History not recorded: %v", err)
		return
	}

	if err := st.SaveEvaluation(ctx, store.EvaluationRecord{
		RunID:          run.ID,
		FinalScore:     eval.FinalScore(),
		Performance:    eval.PerformanceLevel(),
		RawScore:       eval.TotalRawScore(),
		MaxRawScore:    eval.MaxRawScore(),
		ForemanPresent: eval.ForemanPresent,
	}); err != nil {
		log.Warn(ctx, "Evaluation not recorded: %v", err)
	}
}

func runCompare(ctx context.Context, cfg *config.Config, log logger.Logger, file, modelList string, limit int) error {
	if err := requireFile(file); err != nil {
		return err
	}

	content, err := transcript.Load(file)
	if err != nil {
		return err
	}

	questions, err := transcript.LoadQuestions(cfg.Paths.Questions)
	if err != nil {
		return err
	}
	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	comparer := compare.New(client, cfg.Performance.RequestDelay, log)
	name := filepath.Base(file)

	var comparison *compare.Comparison
	if modelList != "" {
		comparison, err = comparer.CompareModels(ctx, name, content, questions, splitList(modelList))
	} else {
		comparison, err = comparer.CompareVariants(ctx, name, content, questions, nil)
	}
	if err != nil {
		return err
	}

	log.Info(ctx, "Recommended: %s", comparison.Best)

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(cfg.Paths.Output,
		fmt.Sprintf("comparison_%s.json", time.Now().Format("20060102_150405")))
	if err := compare.WriteJSON(outPath, comparison); err != nil {
		return err
	}
	log.Info(ctx, "Comparison written: %s", outPath)

	return nil
}

func runSpeakers(file string) error {
	if err := requireFile(file); err != nil {
		return err
	}

	content, err := transcript.Load(file)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", transcript.ExtractProjectName(content))
	fmt.Println("Speakers:")
	confirmed := make(map[string]bool)
	for _, name := range transcript.ConfirmedSpeakers(content) {
		confirmed[name] = true
	}
	for _, s := range transcript.CountTurns(content) {
		marker := " "
		if confirmed[s.Name] {
			marker = "*"
		}
		fmt.Printf("  %s %s (%d turns)\n", marker, s.Name, s.Turns)
	}
	fmt.Println("* confirmed attendee (3+ turns)")

	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	st := openStore(ctx, cfg, log)
	if st != nil {
		defer st.Close()
	}

	a := analyzer.New(client, st, cfg, log)
	handler := func(ctx context.Context, path string) error {
		_, err := a.Analyze(ctx, path)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Press Ctrl+C to stop")

	return w.Start(ctx)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
