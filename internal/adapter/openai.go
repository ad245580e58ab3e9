package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig points the client at any OpenAI-compatible chat endpoint (OpenAI,
// OpenRouter, Mistral, a local vLLM or TGI server).
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// OpenAIClient generates completions through go-openai.
type OpenAIClient struct {
	cfg    OpenAIConfig
	client *openai.Client
}

// NewOpenAIClient constructs an OpenAIClient. No connection is made until Acquire.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{cfg: cfg}
}

// Acquire builds the underlying client.
func (c *OpenAIClient) Acquire(_ context.Context) error {
	if c.cfg.Model == "" {
		return errors.New("openai: model is not configured")
	}

	config := openai.DefaultConfig(c.cfg.APIKey)
	if c.cfg.BaseURL != "" {
		config.BaseURL = c.cfg.BaseURL
	}

	c.client = openai.NewClientWithConfig(config)

	return nil
}

// Infer requests n completions for prompt. Endpoints that ignore the n parameter are
// asked again until n completions have been collected.
func (c *OpenAIClient) Infer(ctx context.Context, prompt string, n int) ([]string, error) {
	if c.client == nil {
		return nil, errors.New("openai: client not acquired")
	}

	n = max(n, 1)
	completions := make([]string, 0, n)

	for len(completions) < n {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.cfg.Model,
			Temperature: c.cfg.Temperature,
			MaxTokens:   c.cfg.MaxTokens,
			N:           n - len(completions),
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return completions, fmt.Errorf("chat completion: %w", err)
		}

		if len(resp.Choices) == 0 {
			return completions, errors.New("chat completion returned no choices")
		}

		for _, choice := range resp.Choices {
			completions = append(completions, choice.Message.Content)
		}

		slog.Debug("Received completions", "model", c.cfg.Model, "count", len(resp.Choices),
			"promptTokens", resp.Usage.PromptTokens, "completionTokens", resp.Usage.CompletionTokens)
	}

	return completions[:n], nil
}
