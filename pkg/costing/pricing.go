// Package costing isolates model-call pricing behind an interface so
// provider-reported cost or updated rate tables can replace the defaults.
package costing

// Pricer estimates the USD cost of one model call from its token usage.
type Pricer interface {
	Cost(model string, inputTokens, outputTokens int) float64
}

// ModelPricing is USD per 1M tokens.
type ModelPricing struct {
	InputPer1M  float64
	OutputPer1M float64
}

// FlatPricer applies one rate to every model.
type FlatPricer struct {
	Pricing ModelPricing
}

// Cost implements Pricer.
func (p FlatPricer) Cost(_ string, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1e6*p.Pricing.InputPer1M +
		float64(outputTokens)/1e6*p.Pricing.OutputPer1M
}

// Default returns the placeholder policy: $0.50/1M input, $2.00/1M output.
func Default() Pricer {
	return FlatPricer{Pricing: ModelPricing{InputPer1M: 0.5, OutputPer1M: 2.0}}
}

// knownModelPricing holds published provider rates (USD per 1M tokens).
// Prices change; unknown models fall back to the flat policy.
var knownModelPricing = map[string]ModelPricing{
	"gpt-4o":                     {InputPer1M: 2.50, OutputPer1M: 10.00},
	"gpt-4o-mini":                {InputPer1M: 0.15, OutputPer1M: 0.60},
	"gpt-4-turbo":                {InputPer1M: 10.00, OutputPer1M: 30.00},
	"gpt-3.5-turbo":              {InputPer1M: 0.50, OutputPer1M: 1.50},
	"claude-3-5-sonnet-20241022": {InputPer1M: 3.00, OutputPer1M: 15.00},
	"claude-3-5-haiku-20241022":  {InputPer1M: 0.80, OutputPer1M: 4.00},
	"claude-3-opus-20240229":     {InputPer1M: 15.00, OutputPer1M: 75.00},
}

// TablePricer looks up published per-model rates, falling back to Fallback
// for unknown models.
type TablePricer struct {
	Fallback Pricer
}

// Cost implements Pricer.
func (p TablePricer) Cost(model string, inputTokens, outputTokens int) float64 {
	if rates, ok := knownModelPricing[model]; ok {
		return float64(inputTokens)/1e6*rates.InputPer1M +
			float64(outputTokens)/1e6*rates.OutputPer1M
	}
	fallback := p.Fallback
	if fallback == nil {
		fallback = Default()
	}
	return fallback.Cost(model, inputTokens, outputTokens)
}
