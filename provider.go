package companionsdk

import "context"

// ──────────────────────────────────────────────
// Language Model Provider — opaque text-completion capability
// ──────────────────────────────────────────────

// Completion is the provider's successful result.
type Completion struct {
	Text       string `json:"text"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Provider generates a completion for a prompt. Implementations should
// honor ctx cancellation; the orchestrator treats deadline expiry exactly
// like any other provider failure.
type Provider interface {
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (*Completion, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, prompt string, temperature float64, maxTokens int) (*Completion, error)

func (f ProviderFunc) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (*Completion, error) {
	return f(ctx, prompt, temperature, maxTokens)
}
