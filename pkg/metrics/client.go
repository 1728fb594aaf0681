package metrics

import (
	"context"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// InstrumentedClient wraps an llm.Client and reports token usage and call
// latency for every completion, regardless of which component made it.
type InstrumentedClient struct {
	inner llm.Client
	m     *Metrics
}

// InstrumentClient wraps client so its calls feed the token and latency
// collectors.
func InstrumentClient(client llm.Client, m *Metrics) *InstrumentedClient {
	return &InstrumentedClient{inner: client, m: m}
}

// CompleteText implements llm.Client.
func (c *InstrumentedClient) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []llm.Message) (*llm.TextResult, error) {
	result, err := c.inner.CompleteText(ctx, cfg, messages)
	if err != nil {
		return nil, err
	}
	c.observe(result.Usage, result.LatencyMs)
	return result, nil
}

// CompleteJSON implements llm.Client.
func (c *InstrumentedClient) CompleteJSON(ctx context.Context, cfg models.ModelConfig, messages []llm.Message, schema *llm.Schema, out any) (*llm.JSONResult, error) {
	result, err := c.inner.CompleteJSON(ctx, cfg, messages, schema, out)
	if err != nil {
		return nil, err
	}
	c.observe(result.Usage, result.LatencyMs)
	return result, nil
}

func (c *InstrumentedClient) observe(usage llm.Usage, latencyMs int64) {
	c.m.TokensUsed.WithLabelValues("input").Add(float64(usage.InputTokens))
	c.m.TokensUsed.WithLabelValues("output").Add(float64(usage.OutputTokens))
	c.m.ModelCallMs.Observe(float64(latencyMs))
}
