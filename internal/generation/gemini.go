package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/reqgen/audiodoc/internal/logger"
)

type implGemini struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// mu guards currentKey; one backend is shared by all request goroutines.
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Service backed by the Gemini API. Multiple API keys
// are rotated through on 429 / quota errors.
func NewGemini(apiKeys []string, model string, log logger.Logger) Service {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (s *implGemini) Generate(ctx context.Context, prompt string, p Params) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	cfg := &genai.GenerateContentConfig{}
	if p.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(p.MaxTokens)
	}
	if p.Temperature > 0 {
		cfg.Temperature = genai.Ptr(p.Temperature)
	}
	if p.TopP > 0 {
		cfg.TopP = genai.Ptr(p.TopP)
	}

	for range attempts {
		keyIdx, key := s.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %v", ErrGenerationFailed, lastErr)
}

func (s *implGemini) key() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
