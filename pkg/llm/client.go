// Package llm provides the model-client abstraction used by the agent loop,
// the rubric judge, and the skill generator. Providers implement plain text
// completion; schema-validated JSON completion is layered on top with
// extraction, validation, and bounded repair retries.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Usage is the token consumption of one completion (summed across repair
// attempts for JSON completions).
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Add accumulates another usage sample.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// TextResult is the outcome of a text completion.
type TextResult struct {
	Text      string
	Usage     Usage
	LatencyMs int64
	Model     string
}

// JSONResult is the outcome of a schema-validated JSON completion.
type JSONResult struct {
	Parsed    json.RawMessage
	Text      string
	Usage     Usage
	LatencyMs int64
	Model     string
}

// Client is the model-client contract consumed by the orchestrator.
type Client interface {
	CompleteText(ctx context.Context, cfg models.ModelConfig, messages []Message) (*TextResult, error)
	// CompleteJSON completes, extracts the first balanced JSON value from the
	// reply, validates it against schema, and unmarshals it into out. On
	// validation failure it retries with an instruction-repair message up to
	// min(3, retries+1) attempts total.
	CompleteJSON(ctx context.Context, cfg models.ModelConfig, messages []Message, schema *Schema, out any) (*JSONResult, error)
}

// TextCompleter is implemented by provider adapters.
type TextCompleter interface {
	CompleteText(ctx context.Context, cfg models.ModelConfig, messages []Message) (*TextResult, error)
}

// MultiProviderClient routes completions to a provider adapter by
// cfg.Provider and layers retries and the JSON contract on top.
type MultiProviderClient struct {
	providers map[string]TextCompleter
}

// NewMultiProviderClient creates a client over the given provider adapters,
// keyed by provider name (e.g. "openai", "anthropic").
func NewMultiProviderClient(providers map[string]TextCompleter) *MultiProviderClient {
	return &MultiProviderClient{providers: providers}
}

// CompleteText resolves the provider and completes with transient-error
// retries (linear backoff, cfg.Retries attempts beyond the first).
func (c *MultiProviderClient) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []Message) (*TextResult, error) {
	provider, ok := c.providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}

	callCtx := ctx
	if cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		result, err := provider.CompleteText(callCtx, cfg, messages)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !isTransient(err) || attempt == cfg.Retries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		slog.Warn("Transient model error, retrying",
			"provider", cfg.Provider, "model", cfg.Model,
			"attempt", attempt+1, "backoff", backoff, "error", err)
		select {
		case <-time.After(backoff):
		case <-callCtx.Done():
			return nil, callCtx.Err()
		}
	}
	return nil, fmt.Errorf("model call failed after %d attempts: %w", cfg.Retries+1, lastErr)
}

// CompleteJSON implements the schema-validated JSON contract.
func (c *MultiProviderClient) CompleteJSON(ctx context.Context, cfg models.ModelConfig, messages []Message, schema *Schema, out any) (*JSONResult, error) {
	conversation := make([]Message, len(messages), len(messages)+4)
	copy(conversation, messages)
	conversation = append(conversation, Message{
		Role: RoleUser,
		Content: "Respond with a single JSON value matching this JSON Schema, with no prose outside the JSON:\n" +
			schema.Raw(),
	})

	maxAttempts := cfg.Retries + 1
	if maxAttempts > 3 {
		maxAttempts = 3
	}

	total := Usage{}
	var totalLatency int64
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := c.CompleteText(ctx, cfg, conversation)
		if err != nil {
			return nil, err
		}
		total.Add(result.Usage)
		totalLatency += result.LatencyMs

		raw, extractErr := ExtractJSON(result.Text)
		if extractErr == nil {
			if validateErr := schema.Validate(raw); validateErr == nil {
				if err := json.Unmarshal(raw, out); err != nil {
					lastErr = fmt.Errorf("unmarshal validated JSON: %w", err)
				} else {
					return &JSONResult{
						Parsed:    raw,
						Text:      result.Text,
						Usage:     total,
						LatencyMs: totalLatency,
						Model:     result.Model,
					}, nil
				}
			} else {
				lastErr = validateErr
			}
		} else {
			lastErr = extractErr
		}

		// Instruction-repair turn: show the model its reply and the failure.
		conversation = append(conversation,
			Message{Role: RoleAssistant, Content: result.Text},
			Message{Role: RoleUser, Content: fmt.Sprintf(
				"That response was not valid against the schema: %v. Reply again with only the corrected JSON.", lastErr)},
		)
	}
	return nil, fmt.Errorf("schema validation failed after %d attempts: %w", maxAttempts, lastErr)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"timeout", "timed out", "network", "connection", "temporar", "rate limit", "overloaded", "500", "502", "503", "529"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
