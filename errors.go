package companionsdk

import (
	"errors"
	"fmt"
)

// ──────────────────────────────────────────────
// Error taxonomy
// ──────────────────────────────────────────────

// Fatal lookup failures. These surface to the caller and are never retried.
var (
	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrUnknownArchetype     = errors.New("unknown role archetype")
	ErrMessageNotFound      = errors.New("message not found")
)

// ProviderErrorKind classifies why a model call failed.
type ProviderErrorKind string

const (
	ProviderTransport ProviderErrorKind = "transport"
	ProviderQuota     ProviderErrorKind = "quota"
	ProviderTimeout   ProviderErrorKind = "timeout"
)

// ProviderError wraps a language-model failure. The orchestrator recovers
// from these locally with a placeholder reply; they never surface to the
// caller as request failures.
type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s error: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err with a failure kind.
func NewProviderError(kind ProviderErrorKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}
