package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/reqgen/audiodoc/internal/chunker"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/policy"
)

const fallbackChars = 500

// Summarize runs the adaptive pipeline: inputs below the minimum word count
// come back verbatim, inputs over the chunk size go through chunked
// summarization, everything else is a single generation call.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) (*Result, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = policy.ParseStrategy(s.defaultStrategy)
	}
	quality := opts.Quality
	if quality == "" {
		quality = s.defaultQuality
	}

	wordCount := len(strings.Fields(text))
	cfg := policy.Compute(wordCount, strategy)

	if wordCount < s.minWords {
		s.logger.Info(ctx, "Input very short (%d words), returning verbatim", wordCount)
		return s.result(text, text, wordCount, strategy, quality, cfg), nil
	}

	var summary string
	var err error
	if wordCount > s.chunkSize {
		summary = s.summarizeLong(ctx, text, cfg, quality, opts.CustomInstruction)
	} else {
		summary, err = s.generate(ctx, text, cfg.MinTokens, cfg.MaxTokens, quality, opts.CustomInstruction)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}

	return s.result(text, summary, wordCount, strategy, quality, cfg), nil
}

// summarizeLong splits the text into fixed-size word chunks, summarizes each
// with chunk-local length targets and joins the results. A single failed
// chunk is skipped; if every chunk fails the head of the original text is
// returned. The joined result is consolidated once when it overshoots the
// overall target.
func (s *implSummarizer) summarizeLong(ctx context.Context, text string, cfg policy.SummaryConfig, quality, instruction string) string {
	chunks := chunker.SplitWords(text, s.chunkSize)
	s.logger.Info(ctx, "Processing %d chunk(s)", len(chunks))

	var parts []string
	for _, c := range chunks {
		if c.WordCount < s.minWords {
			continue
		}

		chunkCfg := policy.Compute(c.WordCount, cfg.Strategy)
		part, err := s.generate(ctx, c.Text, chunkCfg.MinTokens, chunkCfg.MaxTokens, quality, instruction)
		if err != nil {
			s.logger.Warn(ctx, "Chunk %d failed: %v", c.Index, err)
			continue
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		runes := []rune(text)
		if len(runes) > fallbackChars {
			runes = runes[:fallbackChars]
		}
		return string(runes)
	}

	combined := strings.Join(parts, " ")
	combinedWords := len(strings.Fields(combined))

	if len(parts) > 1 && combinedWords > cfg.MaxWords {
		final, err := s.generate(ctx, combined, cfg.MinTokens, cfg.MaxTokens, quality, instruction)
		if err != nil {
			s.logger.Warn(ctx, "Consolidation failed, keeping joined chunks: %v", err)
			return combined
		}
		return final
	}

	return combined
}

// SummarizeForExtraction condenses text before structured-info extraction.
// The min-token bound is clamped to the input word count so tiny inputs
// never force the model past their own length.
func (s *implSummarizer) SummarizeForExtraction(ctx context.Context, text string) (string, error) {
	wordCount := len(strings.Fields(text))
	if wordCount <= 50 {
		return text, nil
	}

	minTokens := 100
	if wordCount < minTokens {
		minTokens = wordCount
	}
	return s.generate(ctx, text, minTokens, 512, s.defaultQuality, "")
}

// generate performs one backend call and cleans the output of hallucinated
// continuations.
func (s *implSummarizer) generate(ctx context.Context, text string, minTokens, maxTokens int, quality, instruction string) (string, error) {
	prefix := "summarize"
	if instruction != "" {
		prefix = instruction
	}
	prompt := fmt.Sprintf("%s: %s", prefix, text)

	out, err := s.service.Generate(ctx, prompt, generation.Params{
		MinTokens:   minTokens,
		MaxTokens:   maxTokens,
		NumBeams:    generation.BeamsForQuality(quality),
		Temperature: 1.0,
	})
	if err != nil {
		return "", err
	}

	cleaned, fired := s.cleaner.Clean(out)
	if fired != "" {
		s.logger.Debug(ctx, "Drift trigger %q fired, summary truncated", fired)
	}
	return cleaned, nil
}

func (s *implSummarizer) result(input, summary string, inputWords int, strategy policy.Strategy, quality string, cfg policy.SummaryConfig) *Result {
	summaryWords := len(strings.Fields(summary))

	var compression float64
	if inputWords > 0 {
		compression = (1 - float64(summaryWords)/float64(inputWords)) * 100
	}

	return &Result{
		Summary:            summary,
		InputWords:         inputWords,
		SummaryWords:       summaryWords,
		CompressionPercent: compression,
		Strategy:           strategy,
		Quality:            quality,
		Config:             cfg,
	}
}
