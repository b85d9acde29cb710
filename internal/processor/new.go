package processor

import (
	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/logger"
	"github.com/reqgen/audiodoc/internal/summarizer"
	"github.com/reqgen/audiodoc/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	assembler   document.Assembler
	logger      logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	asm document.Assembler,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		assembler:   asm,
		logger:      log,
	}
}
