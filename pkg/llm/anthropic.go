package llm

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// anthropicDefaultMaxTokens applies when the run config leaves MaxTokens
// unset; the Anthropic API requires an explicit cap.
const anthropicDefaultMaxTokens = 4096

// AnthropicProvider adapts the official anthropic-sdk-go to TextCompleter.
type AnthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider creates an Anthropic-backed provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// CompleteText implements TextCompleter. System messages are concatenated and
// passed through the dedicated system parameter, per the Anthropic API shape.
func (p *AnthropicProvider) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []Message) (*TextResult, error) {
	var system []string
	var turns []anthropic.MessageParam
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			turns = append(turns, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(cfg.Model),
		MaxTokens: int64(maxTokens),
		Messages:  turns,
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}
	if cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(cfg.Temperature)
	}

	start := time.Now()
	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &TextResult{
		Text: text.String(),
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
		LatencyMs: time.Since(start).Milliseconds(),
		Model:     string(resp.Model),
	}, nil
}
