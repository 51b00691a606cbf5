package analyzer

import (
	"time"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/logger"
	"github.com/buildscope/handover-insight/internal/prompt"
	"github.com/buildscope/handover-insight/internal/store"
)

type implAnalyzer struct {
	client        llm.Client
	store         store.Store
	model         string
	variant       string
	questionsPath string
	outputDir     string
	requestDelay  time.Duration
	logger        logger.Logger
}

// New creates an Analyzer. The store may be nil, in which case run
// history is not persisted.
func New(client llm.Client, st store.Store, cfg *config.Config, log logger.Logger) Analyzer {
	return &implAnalyzer{
		client:        client,
		store:         st,
		model:         cfg.LLM.Provider + ":" + cfg.LLM.Model,
		variant:       prompt.DefaultVariant,
		questionsPath: cfg.Paths.Questions,
		outputDir:     cfg.Paths.Output,
		requestDelay:  cfg.Performance.RequestDelay,
		logger:        log,
	}
}
