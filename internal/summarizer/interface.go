package summarizer

import (
	"context"

	"github.com/reqgen/audiodoc/internal/policy"
)

// Summarizer orchestrates summary generation: adaptive length targets,
// chunking for long inputs, hallucination cleanup and one-shot consolidation.
type Summarizer interface {
	// Summarize produces an adaptive-length summary of free text.
	Summarize(ctx context.Context, text string, opts Options) (*Result, error)

	// SummarizeMeeting runs the meeting pipeline: paragraph-aware chunking
	// with proportional per-chunk bounds and the comprehensive meeting prompt.
	SummarizeMeeting(ctx context.Context, text string) (*Result, error)

	// SummarizeForExtraction condenses text ahead of structured-info
	// extraction. Inputs of 50 words or fewer pass through unchanged.
	SummarizeForExtraction(ctx context.Context, text string) (string, error)
}

// Options tune a Summarize call. Zero values take the configured defaults.
type Options struct {
	Strategy          policy.Strategy
	Quality           string
	CustomInstruction string
}

// Result carries the summary together with its compression metrics.
type Result struct {
	Summary            string
	InputWords         int
	SummaryWords       int
	CompressionPercent float64
	Strategy           policy.Strategy
	Quality            string
	Config             policy.SummaryConfig
}
