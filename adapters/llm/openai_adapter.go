package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/khanhduong/smartresume/internal/application/service"
	"github.com/khanhduong/smartresume/internal/config"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type openaiEnhancer struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIEnhancer returns nil without error when no API key is
// configured; the summary use case treats a nil enhancer as "always
// use the deterministic composer".
func NewOpenAIEnhancer(cfg config.Config, log logger.Logger) (service.SummaryEnhancer, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, nil
	}

	client := openai.NewClient(cfg.OpenAI.APIKey)

	log.Info("OpenAI summary enhancer initialized")
	return &openaiEnhancer{client: client, model: cfg.OpenAI.Model, log: log}, nil
}

func (a *openaiEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: 200,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no chat choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai returned empty summary text")
	}
	return text, nil
}
