package llm

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// OpenAIProvider adapts the official openai-go SDK to TextCompleter.
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

// CompleteText implements TextCompleter.
func (p *OpenAIProvider) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []Message) (*TextResult, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(cfg.Model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}
	if cfg.Temperature > 0 {
		params.Temperature = openai.Float(cfg.Temperature)
	}
	if cfg.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(cfg.MaxTokens))
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai: empty choices in response")
	}

	return &TextResult{
		Text: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		LatencyMs: time.Since(start).Milliseconds(),
		Model:     resp.Model,
	}, nil
}
