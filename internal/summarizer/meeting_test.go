package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/reqgen/audiodoc/internal/generation"
)

func TestSummarizeMeetingTrivialInput(t *testing.T) {
	svc := &mockService{respond: func(int, string, generation.Params) (string, error) {
		t.Fatal("backend should not be called for trivial input")
		return "", nil
	}}
	s := newTestSummarizer(svc)

	text := words(15)
	res, err := s.SummarizeMeeting(context.Background(), text)
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}
	if res.Summary != text {
		t.Error("inputs under 20 words should come back verbatim")
	}
	if res.CompressionPercent != 0 {
		t.Errorf("CompressionPercent = %v, want 0", res.CompressionPercent)
	}
}

func TestSummarizeMeetingSingleChunk(t *testing.T) {
	svc := &mockService{respond: func(int, string, generation.Params) (string, error) {
		return "Meeting covered the rollout plan and owner assignments.", nil
	}}
	s := newTestSummarizer(svc)

	res, err := s.SummarizeMeeting(context.Background(), words(100))
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}
	if len(svc.calls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(svc.calls))
	}

	call := svc.calls[0]
	if !strings.Contains(call.prompt, "expert meeting summarizer") {
		t.Error("meeting prompt missing from backend call")
	}
	// ComputeMeetingRange(100) = (100, 200); single chunk keeps the full
	// range, capped per chunk at 500.
	if call.params.MinTokens != 100 || call.params.MaxTokens != 200 {
		t.Errorf("token bounds = %d/%d, want 100/200", call.params.MinTokens, call.params.MaxTokens)
	}
	if call.params.Temperature != 0.3 || call.params.TopP != 0.9 {
		t.Errorf("decode params = %v/%v, want 0.3/0.9", call.params.Temperature, call.params.TopP)
	}
	if res.SummaryWords == 0 || res.CompressionPercent <= 0 {
		t.Errorf("metrics not computed: words=%d compression=%v", res.SummaryWords, res.CompressionPercent)
	}
}

func TestSummarizeMeetingStripsPromptEcho(t *testing.T) {
	svc := &mockService{respond: func(_ int, prompt string, _ generation.Params) (string, error) {
		return prompt + " The team aligned on the launch date.", nil
	}}
	s := newTestSummarizer(svc)

	res, err := s.SummarizeMeeting(context.Background(), words(100))
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}
	if strings.Contains(res.Summary, "Meeting Transcript") {
		t.Errorf("prompt echo not stripped: %q", res.Summary)
	}
	if !strings.Contains(res.Summary, "aligned on the launch date") {
		t.Errorf("summary content lost: %q", res.Summary)
	}
}

func TestSummarizeMeetingChunked(t *testing.T) {
	svc := &mockService{respond: func(int, string, generation.Params) (string, error) {
		return "Chunk summary with a handful of words here.", nil
	}}
	s := newTestSummarizer(svc)

	// Two 1000-word paragraphs exceed the 1500-word chunk budget, so the
	// text splits on the paragraph boundary into two chunks.
	text := words(1000) + "\n\n" + words(1000)
	res, err := s.SummarizeMeeting(context.Background(), text)
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}
	if len(svc.calls) != 2 {
		t.Fatalf("backend calls = %d, want 2 chunks, no consolidation", len(svc.calls))
	}

	// ComputeMeetingRange(2000) = (500, 700); each 1000-word chunk gets a
	// proportional half, capped at 500 per chunk.
	for i, call := range svc.calls {
		if call.params.MinTokens != 250 || call.params.MaxTokens != 350 {
			t.Errorf("chunk %d token bounds = %d/%d, want 250/350",
				i, call.params.MinTokens, call.params.MaxTokens)
		}
	}

	if !strings.Contains(res.Summary, "\n\n") {
		t.Error("chunk summaries should be joined with blank lines")
	}
}

func TestSummarizeMeetingConsolidates(t *testing.T) {
	long := words(600)
	calls := 0
	svc := &mockService{respond: func(call int, _ string, _ generation.Params) (string, error) {
		calls = call
		if call <= 2 {
			return long, nil
		}
		return "final consolidated meeting summary", nil
	}}
	s := newTestSummarizer(svc)

	// Combined chunk output (1200 words) exceeds 1.5x the 700-word ceiling
	// for a 2000-word input, forcing one consolidation pass.
	text := words(1000) + "\n\n" + words(1000)
	res, err := s.SummarizeMeeting(context.Background(), text)
	if err != nil {
		t.Fatalf("SummarizeMeeting() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("backend calls = %d, want 2 chunks + 1 consolidation", calls)
	}
	if res.Summary != "final consolidated meeting summary" {
		t.Errorf("Summary = %q, want consolidation output", res.Summary)
	}
}
