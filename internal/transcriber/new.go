package transcriber

import (
	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/logger"
	"github.com/reqgen/audiodoc/pkg/executor"
)

type implTranscriber struct {
	executor executor.Executor
	cfg      config.WhisperConfig
	logger   logger.Logger
}

// New creates a Transcriber backed by ffmpeg and whisper.cpp.
func New(exec executor.Executor, cfg config.WhisperConfig, log logger.Logger) Transcriber {
	return &implTranscriber{
		executor: exec,
		cfg:      cfg,
		logger:   log,
	}
}
