// Package llmtest provides a scripted model client for tests: a dual-dispatch
// mock with per-schema routing plus a sequential fallback, so concurrent
// workers with non-deterministic call order still get coherent responses.
package llmtest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Entry is one scripted model response.
type Entry struct {
	Text  string // reply text; for JSON calls this is the raw JSON (fences allowed)
	Error error  // returned instead of a response

	InputTokens  int // defaults to 10
	OutputTokens int // defaults to 5

	BlockUntilCancelled bool            // block until ctx is done, then return ctx.Err()
	OnBlock             chan<- struct{} // notified when the blocking path is entered
}

// Client implements llm.Client from scripted entries.
type Client struct {
	mu         sync.Mutex
	sequential []Entry
	seqIndex   int
	routes     map[string][]Entry // schema name → per-contract script
	routeIndex map[string]int

	capturedText [][]llm.Message
	capturedJSON []string // schema names in call order
}

// NewClient creates an empty scripted client.
func NewClient() *Client {
	return &Client{
		routes:     make(map[string][]Entry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential appends an entry consumed in order by non-routed calls.
func (c *Client) AddSequential(entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entry)
}

// AddRouted appends an entry for calls carrying the named schema.
func (c *Client) AddRouted(schemaName string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[schemaName] = append(c.routes[schemaName], entry)
}

// JSONCalls returns the schema names of all CompleteJSON calls in order.
func (c *Client) JSONCalls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.capturedJSON))
	copy(out, c.capturedJSON)
	return out
}

// CompleteText implements llm.Client.
func (c *Client) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []llm.Message) (*llm.TextResult, error) {
	c.mu.Lock()
	c.capturedText = append(c.capturedText, messages)
	entry, err := c.next("")
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if blockErr := entry.block(ctx); blockErr != nil {
		return nil, blockErr
	}
	if entry.Error != nil {
		return nil, entry.Error
	}
	return &llm.TextResult{
		Text:      entry.Text,
		Usage:     entry.usage(),
		LatencyMs: 1,
		Model:     cfg.Model,
	}, nil
}

// CompleteJSON implements llm.Client. The scripted JSON is validated against
// the schema so a broken script fails loudly in the test that wrote it.
func (c *Client) CompleteJSON(ctx context.Context, cfg models.ModelConfig, messages []llm.Message, schema *llm.Schema, out any) (*llm.JSONResult, error) {
	c.mu.Lock()
	c.capturedJSON = append(c.capturedJSON, schema.Name())
	entry, err := c.next(schema.Name())
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if blockErr := entry.block(ctx); blockErr != nil {
		return nil, blockErr
	}
	if entry.Error != nil {
		return nil, entry.Error
	}

	raw, err := llm.ExtractJSON(entry.Text)
	if err != nil {
		return nil, fmt.Errorf("scripted entry for %s: %w", schema.Name(), err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("scripted entry for %s: %w", schema.Name(), err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("scripted entry for %s: %w", schema.Name(), err)
	}
	return &llm.JSONResult{
		Parsed:    raw,
		Text:      entry.Text,
		Usage:     entry.usage(),
		LatencyMs: 1,
		Model:     cfg.Model,
	}, nil
}

// next pops the next entry: routed first, then the sequential fallback.
// Callers hold c.mu.
func (c *Client) next(schemaName string) (Entry, error) {
	if schemaName != "" {
		if script, ok := c.routes[schemaName]; ok {
			i := c.routeIndex[schemaName]
			if i < len(script) {
				c.routeIndex[schemaName] = i + 1
				return script[i], nil
			}
		}
	}
	if c.seqIndex < len(c.sequential) {
		entry := c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}
	return Entry{}, fmt.Errorf("scripted client exhausted (schema %q, %d sequential consumed)", schemaName, c.seqIndex)
}

func (e Entry) usage() llm.Usage {
	in, out := e.InputTokens, e.OutputTokens
	if in == 0 {
		in = 10
	}
	if out == 0 {
		out = 5
	}
	return llm.Usage{InputTokens: in, OutputTokens: out}
}

func (e Entry) block(ctx context.Context) error {
	if !e.BlockUntilCancelled {
		return nil
	}
	if e.OnBlock != nil {
		e.OnBlock <- struct{}{}
	}
	<-ctx.Done()
	return ctx.Err()
}
