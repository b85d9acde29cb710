package summarizer

import (
	"github.com/reqgen/audiodoc/internal/cleaner"
	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/logger"
)

type implSummarizer struct {
	service generation.Service
	cleaner *cleaner.Cleaner
	logger  logger.Logger

	chunkSize          int
	minWords           int
	defaultStrategy    string
	defaultQuality     string
	meetingChunkBudget int
}

// New creates a Summarizer on top of the given generation backend.
func New(service generation.Service, cfg config.SummaryConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		service:            service,
		cleaner:            cleaner.New(),
		logger:             log,
		chunkSize:          cfg.ChunkSize,
		minWords:           cfg.MinWords,
		defaultStrategy:    cfg.DefaultStrategy,
		defaultQuality:     cfg.DefaultQuality,
		meetingChunkBudget: cfg.MeetingChunkBudget,
	}
}
