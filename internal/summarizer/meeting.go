package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/reqgen/audiodoc/internal/chunker"
	"github.com/reqgen/audiodoc/internal/generation"
	"github.com/reqgen/audiodoc/internal/policy"
)

const meetingPrompt = `### Instruction:
You are an expert meeting summarizer. Create a comprehensive summary of the meeting transcript below.

REQUIREMENTS:
1. Include all important information
2. Preserve key decisions and action items
3. Maintain context and specific details
4. Use clear, professional language
5. Be thorough but concise

### Meeting Transcript:
%s

### Comprehensive Summary:
`

const summaryMarker = "### Comprehensive Summary:"

const (
	meetingMinInput      = 20
	meetingChunkMaxCap   = 500
	meetingChunkMinFloor = 50
	meetingChunkMaxFloor = 100
)

// SummarizeMeeting runs the meeting pipeline: adaptive range from the input
// length, paragraph-aware chunking, per-chunk bounds proportional to chunk
// size, and a single consolidation pass when the joined result overshoots.
func (s *implSummarizer) SummarizeMeeting(ctx context.Context, text string) (*Result, error) {
	wordCount := len(strings.Fields(text))

	if wordCount < meetingMinInput {
		return &Result{
			Summary:      text,
			InputWords:   wordCount,
			SummaryWords: wordCount,
		}, nil
	}

	minLen, maxLen := policy.ComputeMeetingRange(wordCount)
	chunks := chunker.SplitParagraphs(text, s.meetingChunkBudget)

	if len(chunks) > 1 {
		s.logger.Info(ctx, "Split into %d chunks for processing", len(chunks))
	}

	var parts []string
	for _, c := range chunks {
		chunkMin, chunkMax := minLen, maxLen
		if len(chunks) > 1 {
			chunkMin = max(meetingChunkMinFloor, minLen*c.WordCount/wordCount)
			chunkMax = max(meetingChunkMaxFloor, maxLen*c.WordCount/wordCount)
		}
		chunkMax = min(chunkMax, meetingChunkMaxCap)
		chunkMin = min(chunkMin, chunkMax-10)

		part, err := s.generateMeeting(ctx, c.Text, chunkMin, chunkMax)
		if err != nil {
			return nil, fmt.Errorf("summarize meeting chunk %d: %w", c.Index, err)
		}
		parts = append(parts, part)
	}

	var final string
	if len(parts) == 1 {
		final = parts[0]
	} else {
		combined := strings.Join(parts, "\n\n")
		combinedWords := len(strings.Fields(combined))
		s.logger.Info(ctx, "Combined chunks: %d words", combinedWords)

		if float64(combinedWords) > float64(maxLen)*1.5 {
			consolidated, err := s.generateMeeting(ctx, combined, minLen, maxLen)
			if err != nil {
				return nil, fmt.Errorf("consolidate meeting summary: %w", err)
			}
			final = consolidated
		} else {
			final = combined
		}
	}

	summaryWords := len(strings.Fields(final))
	var compression float64
	if wordCount > 0 {
		compression = (1 - float64(summaryWords)/float64(wordCount)) * 100
	}

	return &Result{
		Summary:            final,
		InputWords:         wordCount,
		SummaryWords:       summaryWords,
		CompressionPercent: compression,
	}, nil
}

// generateMeeting performs one backend call with the meeting prompt and
// low-temperature anti-loop decoding, then strips prompt echo and
// hallucinated continuations.
func (s *implSummarizer) generateMeeting(ctx context.Context, text string, minTokens, maxTokens int) (string, error) {
	prompt := fmt.Sprintf(meetingPrompt, text)

	out, err := s.service.Generate(ctx, prompt, generation.Params{
		MinTokens:   minTokens,
		MaxTokens:   maxTokens,
		Temperature: 0.3,
		TopP:        0.9,
	})
	if err != nil {
		return "", err
	}

	// Completion-style backends may echo the prompt back.
	if idx := strings.LastIndex(out, summaryMarker); idx >= 0 {
		out = out[idx+len(summaryMarker):]
	}
	out = strings.TrimSpace(strings.ReplaceAll(out, "###", ""))

	cleaned, _ := s.cleaner.Clean(out)
	return cleaned, nil
}
