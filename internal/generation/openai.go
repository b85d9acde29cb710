package generation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/reqgen/audiodoc/internal/logger"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Service backed by an OpenAI-compatible chat endpoint.
// BaseURL may point at a self-hosted server exposing the same API.
func NewOpenAI(baseURL, apiKey, model string, log logger.Logger) Service {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &implOpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: log,
	}
}

func (s *implOpenAI) Generate(ctx context.Context, prompt string, p Params) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if p.MaxTokens > 0 {
		req.MaxTokens = p.MaxTokens
	}
	if p.Temperature > 0 {
		req.Temperature = p.Temperature
	}
	if p.TopP > 0 {
		req.TopP = p.TopP
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}
