package llm

// ModelCost is USD pricing per million tokens, taken from the providers'
// published price lists (checked 2026-08).
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost is the USD total for one request's token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, or nil when the model is not
// in the table. The cost view marks totals over unknown models as partial.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models this app can be configured with: the
// friendly-name targets of each backend plus their floating aliases.
// OpenRouter IDs are vendor-prefixed and not listed; routed prices vary
// by upstream.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},

	// OpenAI
	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},

	// Google
	"gemini-2.0-flash":    {0.1, 0.4},
	"gemini-2.0-pro":      {1.25, 10},
	"gemini-flash-latest": {0.3, 2.5},

	// OpenAI embeddings (knowledge-base retrieval)
	"text-embedding-3-small": {0.02, 0},
}
