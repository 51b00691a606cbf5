package rubric

import (
	"time"

	"github.com/buildscope/handover-insight/internal/config"
	"github.com/buildscope/handover-insight/internal/llm"
	"github.com/buildscope/handover-insight/internal/logger"
)

type implScorer struct {
	client       llm.Client
	model        string
	requestDelay time.Duration
	logger       logger.Logger
}

// New creates a Scorer that grades documents with the given LLM client
func New(client llm.Client, cfg *config.Config, log logger.Logger) Scorer {
	return &implScorer{
		client:       client,
		model:        cfg.LLM.Provider + ":" + cfg.LLM.Model,
		requestDelay: cfg.Performance.RequestDelay,
		logger:       log,
	}
}
