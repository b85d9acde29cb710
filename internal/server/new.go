package server

import (
	"github.com/reqgen/audiodoc/internal/config"
	"github.com/reqgen/audiodoc/internal/document"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/logger"
	"github.com/reqgen/audiodoc/internal/summarizer"
	"github.com/reqgen/audiodoc/internal/transcriber"
)

// Server wires the HTTP surface over the processing components.
type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	registry    *generation.Registry
	assembler   document.Assembler
}

// New creates a Server. The generation backend behind the registry stays
// unbuilt until the first request or an explicit preload.
func New(
	cfg *config.Config,
	log logger.Logger,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	reg *generation.Registry,
	asm document.Assembler,
) *Server {
	return &Server{
		cfg:         cfg,
		logger:      log,
		transcriber: tr,
		summarizer:  sum,
		registry:    reg,
		assembler:   asm,
	}
}
